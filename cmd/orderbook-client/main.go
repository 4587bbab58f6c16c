// Command orderbook-client is a demo terminal client for the BookSummary
// RPC. It is not part of the core aggregator binary and has no tests.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/fd1az/orderbook-aggregator/api/orderbook"
)

func main() {
	addr := flag.String("addr", "[::1]:10000", "orderbook-aggregator RPC address")
	flag.Parse()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	client := orderbook.NewOrderbookAggregatorClient(conn)

	stream, err := client.BookSummary(context.Background(), &orderbook.Empty{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "subscribe: %v\n", err)
		os.Exit(1)
	}

	for {
		summary, err := stream.Recv()
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "recv: %v\n", err)
			os.Exit(1)
		}

		fmt.Print("\033[2J\033[H")
		fmt.Printf("Spread: %.10f\n", summary.Spread)
		fmt.Println("-------------------------------------------------------------------")

		n := len(summary.Bids)
		if len(summary.Asks) < n {
			n = len(summary.Asks)
		}
		for i := 0; i < n; i++ {
			bid, ask := summary.Bids[i], summary.Asks[i]
			fmt.Printf("%-12s %-12.8f - %-14.10f | %14.10f - %-14.8f %-12s\n",
				bid.Exchange, bid.Amount, bid.Price,
				ask.Price, ask.Amount, ask.Exchange)
		}
	}
}
