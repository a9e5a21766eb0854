package schema

import (
	"fmt"
	"os"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/funvibe/deriva/internal/typeinfo"
	"github.com/funvibe/deriva/internal/typesystem"
)

// LoadProtoFiles parses .proto source files and converts every message and
// enum they declare. Messages become single-constructor types; enums become
// sum types with one nullary constructor per value.
func LoadProtoFiles(importPaths []string, filenames ...string) ([]*typeinfo.ParamTypeInfo, error) {
	parser := protoparse.Parser{ImportPaths: importPaths}
	fds, err := parser.ParseFiles(filenames...)
	if err != nil {
		return nil, fmt.Errorf("parse proto: %w", err)
	}
	return convertFiles(fds), nil
}

// ParseProtoSource parses in-memory .proto content, keyed by filename.
func ParseProtoSource(sources map[string]string, filenames ...string) ([]*typeinfo.ParamTypeInfo, error) {
	parser := protoparse.Parser{Accessor: protoparse.FileContentsFromMap(sources)}
	fds, err := parser.ParseFiles(filenames...)
	if err != nil {
		return nil, fmt.Errorf("parse proto: %w", err)
	}
	return convertFiles(fds), nil
}

// LoadDescriptorSet reads a serialized FileDescriptorSet (protoc -o output).
func LoadDescriptorSet(path string) ([]*typeinfo.ParamTypeInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read descriptor set %s: %w", path, err)
	}

	var fdset descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(data, &fdset); err != nil {
		return nil, fmt.Errorf("unmarshal descriptor set %s: %w", path, err)
	}

	files, err := desc.CreateFileDescriptorsFromSet(&fdset)
	if err != nil {
		return nil, fmt.Errorf("resolve descriptor set %s: %w", path, err)
	}

	fds := make([]*desc.FileDescriptor, 0, len(files))
	for _, fd := range files {
		fds = append(fds, fd)
	}
	return convertFiles(fds), nil
}

func convertFiles(fds []*desc.FileDescriptor) []*typeinfo.ParamTypeInfo {
	infos := []*typeinfo.ParamTypeInfo{}
	for _, fd := range fds {
		for _, md := range fd.GetMessageTypes() {
			infos = append(infos, convertMessage(md))
		}
		for _, ed := range fd.GetEnumTypes() {
			infos = append(infos, convertEnum(ed))
		}
	}
	return infos
}

// ConvertMessages converts an explicit list of message descriptors, used by
// the gRPC reflection loader.
func ConvertMessages(mds []*desc.MessageDescriptor) []*typeinfo.ParamTypeInfo {
	infos := make([]*typeinfo.ParamTypeInfo, len(mds))
	for i, md := range mds {
		infos[i] = convertMessage(md)
	}
	return infos
}

func convertMessage(md *desc.MessageDescriptor) *typeinfo.ParamTypeInfo {
	ctor := typeinfo.Constructor{Name: md.GetName()}
	for _, field := range md.GetFields() {
		ctor.Args = append(ctor.Args, typeinfo.ConstructorArg{
			Explicit: true,
			Type:     protoFieldType(field),
		})
	}
	return &typeinfo.ParamTypeInfo{
		Name:         md.GetName(),
		Constructors: []typeinfo.Constructor{ctor},
	}
}

func convertEnum(ed *desc.EnumDescriptor) *typeinfo.ParamTypeInfo {
	ti := &typeinfo.ParamTypeInfo{Name: ed.GetName()}
	for _, ev := range ed.GetValues() {
		ti.Constructors = append(ti.Constructors, typeinfo.Constructor{Name: ev.GetName()})
	}
	return ti
}

func protoFieldType(fd *desc.FieldDescriptor) typesystem.Type {
	base := protoScalarType(fd)
	if fd.IsRepeated() && !fd.IsMap() {
		return typesystem.TApp{
			Constructor: typesystem.TCon{Name: "List", KindVal: typesystem.MakeArrow(typesystem.Star, typesystem.Star)},
			Args:        []typesystem.Type{base},
		}
	}
	if fd.IsMap() {
		return typesystem.TApp{
			Constructor: typesystem.TCon{Name: "Map", KindVal: typesystem.MakeArrow(typesystem.Star, typesystem.Star, typesystem.Star)},
			Args: []typesystem.Type{
				protoScalarType(fd.GetMapKeyType()),
				protoScalarType(fd.GetMapValueType()),
			},
		}
	}
	return base
}

func protoScalarType(fd *desc.FieldDescriptor) typesystem.Type {
	switch fd.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_INT32, descriptorpb.FieldDescriptorProto_TYPE_INT64,
		descriptorpb.FieldDescriptorProto_TYPE_UINT32, descriptorpb.FieldDescriptorProto_TYPE_UINT64,
		descriptorpb.FieldDescriptorProto_TYPE_SINT32, descriptorpb.FieldDescriptorProto_TYPE_SINT64,
		descriptorpb.FieldDescriptorProto_TYPE_FIXED32, descriptorpb.FieldDescriptorProto_TYPE_FIXED64,
		descriptorpb.FieldDescriptorProto_TYPE_SFIXED32, descriptorpb.FieldDescriptorProto_TYPE_SFIXED64:
		return typesystem.Int
	case descriptorpb.FieldDescriptorProto_TYPE_FLOAT, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE:
		return typesystem.Float
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return typesystem.Bool
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return typesystem.String
	case descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		return typesystem.Bytes
	case descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, descriptorpb.FieldDescriptorProto_TYPE_GROUP:
		return typesystem.TCon{Name: fd.GetMessageType().GetName()}
	case descriptorpb.FieldDescriptorProto_TYPE_ENUM:
		return typesystem.TCon{Name: fd.GetEnumType().GetName()}
	default:
		return typesystem.Nil
	}
}
