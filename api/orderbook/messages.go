// Package orderbook holds the wire messages and service definition for the
// BookSummary streaming RPC. There is no protoc toolchain in this
// environment, so the descriptor here is assembled from orderbook.proto's
// shape in Go and fed through the same protobuf-go runtime machinery
// protoc-gen-go output uses (protoimpl.TypeBuilder). The wire format and
// generated-code mechanics are otherwise identical to what protoc would
// produce from orderbook.proto; keep the two in sync by hand.
package orderbook

import (
	"reflect"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/runtime/protoimpl"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Empty is the BookSummary request message: no fields, one subscriber per
// stream, no parameters.
type Empty struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Empty) Reset() {
	*x = Empty{}
	mi := &file_orderbook_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Empty) String() string { return protoimpl.X.MessageStringOf(x) }

func (*Empty) ProtoMessage() {}

func (x *Empty) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Level is a single venue-tagged (price, quantity) row.
type Level struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Exchange      string                 `protobuf:"bytes,1,opt,name=exchange,proto3" json:"exchange,omitempty"`
	Price         float64                `protobuf:"fixed64,2,opt,name=price,proto3" json:"price,omitempty"`
	Amount        float64                `protobuf:"fixed64,3,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Level) Reset() {
	*x = Level{}
	mi := &file_orderbook_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Level) String() string { return protoimpl.X.MessageStringOf(x) }

func (*Level) ProtoMessage() {}

func (x *Level) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *Level) GetExchange() string {
	if x != nil {
		return x.Exchange
	}
	return ""
}

func (x *Level) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *Level) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

// Summary is the merged, depth-bounded top-of-book view.
type Summary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bids          []*Level               `protobuf:"bytes,1,rep,name=bids,proto3" json:"bids,omitempty"`
	Asks          []*Level               `protobuf:"bytes,2,rep,name=asks,proto3" json:"asks,omitempty"`
	Spread        float64                `protobuf:"fixed64,3,opt,name=spread,proto3" json:"spread,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Summary) Reset() {
	*x = Summary{}
	mi := &file_orderbook_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Summary) String() string { return protoimpl.X.MessageStringOf(x) }

func (*Summary) ProtoMessage() {}

func (x *Summary) ProtoReflect() protoreflect.Message {
	mi := &file_orderbook_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *Summary) GetBids() []*Level {
	if x != nil {
		return x.Bids
	}
	return nil
}

func (x *Summary) GetAsks() []*Level {
	if x != nil {
		return x.Asks
	}
	return nil
}

func (x *Summary) GetSpread() float64 {
	if x != nil {
		return x.Spread
	}
	return 0
}

var File_orderbook_proto protoreflect.FileDescriptor

var file_orderbook_proto_msgTypes = make([]protoimpl.MessageInfo, 3)

var file_orderbook_proto_goTypes = []any{
	(*Empty)(nil),   // 0: orderbook.Empty
	(*Level)(nil),   // 1: orderbook.Level
	(*Summary)(nil), // 2: orderbook.Summary
}

var file_orderbook_proto_depIdxs = []int32{
	1, // 0: orderbook.Summary.bids:type_name -> orderbook.Level
	1, // 1: orderbook.Summary.asks:type_name -> orderbook.Level
	0, // 2: orderbook.OrderbookAggregator.BookSummary:input_type -> orderbook.Empty
	2, // 3: orderbook.OrderbookAggregator.BookSummary:output_type -> orderbook.Summary
	3, // [3:4] is the sub-list for method output_type
	2, // [2:3] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func strp(s string) *string { return &s }
func i32p(v int32) *int32   { return &v }

// fileDescriptorProto rebuilds orderbook.proto's shape as a
// descriptorpb.FileDescriptorProto, in lieu of a protoc-produced raw byte
// literal. See the package doc comment for why.
func fileDescriptorProto() *descriptorpb.FileDescriptorProto {
	label := func(l descriptorpb.FieldDescriptorProto_Label) *descriptorpb.FieldDescriptorProto_Label { return &l }
	ftype := func(t descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto_Type { return &t }
	streaming := func(b bool) *bool { return &b }

	field := func(name string, num int32, t descriptorpb.FieldDescriptorProto_Type, repeated bool, typeName string) *descriptorpb.FieldDescriptorProto {
		lbl := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
		if repeated {
			lbl = descriptorpb.FieldDescriptorProto_LABEL_REPEATED
		}
		f := &descriptorpb.FieldDescriptorProto{
			Name:     strp(name),
			Number:   i32p(num),
			Label:    label(lbl),
			Type:     ftype(t),
			JsonName: strp(name),
		}
		if typeName != "" {
			f.TypeName = strp(typeName)
		}
		return f
	}

	return &descriptorpb.FileDescriptorProto{
		Name:    strp("orderbook/orderbook.proto"),
		Package: strp("orderbook"),
		Syntax:  strp("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{Name: strp("Empty")},
			{
				Name: strp("Level"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("exchange", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING, false, ""),
					field("price", 2, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE, false, ""),
					field("amount", 3, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE, false, ""),
				},
			},
			{
				Name: strp("Summary"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("bids", 1, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, true, ".orderbook.Level"),
					field("asks", 2, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, true, ".orderbook.Level"),
					field("spread", 3, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE, false, ""),
				},
			},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{
			{
				Name: strp("OrderbookAggregator"),
				Method: []*descriptorpb.MethodDescriptorProto{
					{
						Name:            strp("BookSummary"),
						InputType:       strp(".orderbook.Empty"),
						OutputType:      strp(".orderbook.Summary"),
						ServerStreaming: streaming(true),
					},
				},
			},
		},
		Options: &descriptorpb.FileOptions{
			GoPackage: strp("github.com/fd1az/orderbook-aggregator/api/orderbook"),
		},
	}
}

func init() {
	rawDesc, err := proto.Marshal(fileDescriptorProto())
	if err != nil {
		panic("orderbook: marshal file descriptor: " + err.Error())
	}

	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: rawDesc,
			NumEnums:      0,
			NumMessages:   3,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_orderbook_proto_goTypes,
		DependencyIndexes: file_orderbook_proto_depIdxs,
		MessageInfos:      file_orderbook_proto_msgTypes,
	}.Build()
	File_orderbook_proto = out.File
}
