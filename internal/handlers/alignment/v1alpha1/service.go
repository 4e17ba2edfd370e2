package v1alpha1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/KirkDiggler/rpg-alignment/internal/grpcjson"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "alignment.api.v1alpha1.AlignmentService"

// Full method names
const (
	AlignmentService_GetLedger_FullMethodName         = "/alignment.api.v1alpha1.AlignmentService/GetLedger"
	AlignmentService_ApplyDelta_FullMethodName        = "/alignment.api.v1alpha1.AlignmentService/ApplyDelta"
	AlignmentService_SetPreset_FullMethodName         = "/alignment.api.v1alpha1.AlignmentService/SetPreset"
	AlignmentService_ListPresets_FullMethodName       = "/alignment.api.v1alpha1.AlignmentService/ListPresets"
	AlignmentService_SyncTrait_FullMethodName         = "/alignment.api.v1alpha1.AlignmentService/SyncTrait"
	AlignmentService_RegisterCharacter_FullMethodName = "/alignment.api.v1alpha1.AlignmentService/RegisterCharacter"
	AlignmentService_RemoveCharacter_FullMethodName   = "/alignment.api.v1alpha1.AlignmentService/RemoveCharacter"
	AlignmentService_ListCharacters_FullMethodName    = "/alignment.api.v1alpha1.AlignmentService/ListCharacters"
	AlignmentService_RenderParty_FullMethodName       = "/alignment.api.v1alpha1.AlignmentService/RenderParty"
	AlignmentService_Hover_FullMethodName             = "/alignment.api.v1alpha1.AlignmentService/Hover"
	AlignmentService_RenderTab_FullMethodName         = "/alignment.api.v1alpha1.AlignmentService/RenderTab"
)

// AlignmentServiceServer is the server API for the alignment service
type AlignmentServiceServer interface {
	GetLedger(context.Context, *GetLedgerRequest) (*GetLedgerResponse, error)
	ApplyDelta(context.Context, *ApplyDeltaRequest) (*ApplyDeltaResponse, error)
	SetPreset(context.Context, *SetPresetRequest) (*SetPresetResponse, error)
	ListPresets(context.Context, *ListPresetsRequest) (*ListPresetsResponse, error)
	SyncTrait(context.Context, *SyncTraitRequest) (*SyncTraitResponse, error)
	RegisterCharacter(context.Context, *RegisterCharacterRequest) (*RegisterCharacterResponse, error)
	RemoveCharacter(context.Context, *RemoveCharacterRequest) (*RemoveCharacterResponse, error)
	ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error)
	RenderParty(context.Context, *RenderPartyRequest) (*RenderPartyResponse, error)
	Hover(context.Context, *HoverRequest) (*HoverResponse, error)
	RenderTab(context.Context, *RenderTabRequest) (*RenderTabResponse, error)
}

// RegisterAlignmentServiceServer registers srv with s
func RegisterAlignmentServiceServer(s grpc.ServiceRegistrar, srv AlignmentServiceServer) {
	s.RegisterService(&AlignmentService_ServiceDesc, srv)
}

func _AlignmentService_GetLedger_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(GetLedgerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlignmentServiceServer).GetLedger(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AlignmentService_GetLedger_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AlignmentServiceServer).GetLedger(ctx, req.(*GetLedgerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AlignmentService_ApplyDelta_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(ApplyDeltaRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlignmentServiceServer).ApplyDelta(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AlignmentService_ApplyDelta_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AlignmentServiceServer).ApplyDelta(ctx, req.(*ApplyDeltaRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AlignmentService_SetPreset_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(SetPresetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlignmentServiceServer).SetPreset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AlignmentService_SetPreset_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AlignmentServiceServer).SetPreset(ctx, req.(*SetPresetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AlignmentService_ListPresets_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(ListPresetsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlignmentServiceServer).ListPresets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AlignmentService_ListPresets_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AlignmentServiceServer).ListPresets(ctx, req.(*ListPresetsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AlignmentService_SyncTrait_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(SyncTraitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlignmentServiceServer).SyncTrait(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AlignmentService_SyncTrait_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AlignmentServiceServer).SyncTrait(ctx, req.(*SyncTraitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AlignmentService_RegisterCharacter_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(RegisterCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlignmentServiceServer).RegisterCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AlignmentService_RegisterCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AlignmentServiceServer).RegisterCharacter(ctx, req.(*RegisterCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AlignmentService_RemoveCharacter_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(RemoveCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlignmentServiceServer).RemoveCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AlignmentService_RemoveCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AlignmentServiceServer).RemoveCharacter(ctx, req.(*RemoveCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AlignmentService_ListCharacters_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(ListCharactersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlignmentServiceServer).ListCharacters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AlignmentService_ListCharacters_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AlignmentServiceServer).ListCharacters(ctx, req.(*ListCharactersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AlignmentService_RenderParty_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(RenderPartyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlignmentServiceServer).RenderParty(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AlignmentService_RenderParty_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AlignmentServiceServer).RenderParty(ctx, req.(*RenderPartyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AlignmentService_Hover_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(HoverRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlignmentServiceServer).Hover(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AlignmentService_Hover_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AlignmentServiceServer).Hover(ctx, req.(*HoverRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AlignmentService_RenderTab_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(RenderTabRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlignmentServiceServer).RenderTab(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AlignmentService_RenderTab_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AlignmentServiceServer).RenderTab(ctx, req.(*RenderTabRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AlignmentService_ServiceDesc describes the alignment service for grpc.Server.
// Messages travel with the JSON codec.
var AlignmentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AlignmentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetLedger", Handler: _AlignmentService_GetLedger_Handler},
		{MethodName: "ApplyDelta", Handler: _AlignmentService_ApplyDelta_Handler},
		{MethodName: "SetPreset", Handler: _AlignmentService_SetPreset_Handler},
		{MethodName: "ListPresets", Handler: _AlignmentService_ListPresets_Handler},
		{MethodName: "SyncTrait", Handler: _AlignmentService_SyncTrait_Handler},
		{MethodName: "RegisterCharacter", Handler: _AlignmentService_RegisterCharacter_Handler},
		{MethodName: "RemoveCharacter", Handler: _AlignmentService_RemoveCharacter_Handler},
		{MethodName: "ListCharacters", Handler: _AlignmentService_ListCharacters_Handler},
		{MethodName: "RenderParty", Handler: _AlignmentService_RenderParty_Handler},
		{MethodName: "Hover", Handler: _AlignmentService_Hover_Handler},
		{MethodName: "RenderTab", Handler: _AlignmentService_RenderTab_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "alignment/api/v1alpha1/alignment.go",
}

// AlignmentServiceClient is the client API for the alignment service
type AlignmentServiceClient interface {
	GetLedger(ctx context.Context, in *GetLedgerRequest, opts ...grpc.CallOption) (*GetLedgerResponse, error)
	ApplyDelta(ctx context.Context, in *ApplyDeltaRequest, opts ...grpc.CallOption) (*ApplyDeltaResponse, error)
	SetPreset(ctx context.Context, in *SetPresetRequest, opts ...grpc.CallOption) (*SetPresetResponse, error)
	ListPresets(ctx context.Context, in *ListPresetsRequest, opts ...grpc.CallOption) (*ListPresetsResponse, error)
	SyncTrait(ctx context.Context, in *SyncTraitRequest, opts ...grpc.CallOption) (*SyncTraitResponse, error)
	RegisterCharacter(ctx context.Context, in *RegisterCharacterRequest, opts ...grpc.CallOption) (*RegisterCharacterResponse, error)
	RemoveCharacter(ctx context.Context, in *RemoveCharacterRequest, opts ...grpc.CallOption) (*RemoveCharacterResponse, error)
	ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error)
	RenderParty(ctx context.Context, in *RenderPartyRequest, opts ...grpc.CallOption) (*RenderPartyResponse, error)
	Hover(ctx context.Context, in *HoverRequest, opts ...grpc.CallOption) (*HoverResponse, error)
	RenderTab(ctx context.Context, in *RenderTabRequest, opts ...grpc.CallOption) (*RenderTabResponse, error)
}

type alignmentServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAlignmentServiceClient returns a client that sends every call with the JSON codec
func NewAlignmentServiceClient(cc grpc.ClientConnInterface) AlignmentServiceClient {
	return &alignmentServiceClient{cc: cc}
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(grpcjson.Name)}, opts...)
}

func (c *alignmentServiceClient) GetLedger(
	ctx context.Context,
	in *GetLedgerRequest,
	opts ...grpc.CallOption,
) (*GetLedgerResponse, error) {
	out := new(GetLedgerResponse)
	if err := c.cc.Invoke(ctx, AlignmentService_GetLedger_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *alignmentServiceClient) ApplyDelta(
	ctx context.Context,
	in *ApplyDeltaRequest,
	opts ...grpc.CallOption,
) (*ApplyDeltaResponse, error) {
	out := new(ApplyDeltaResponse)
	if err := c.cc.Invoke(ctx, AlignmentService_ApplyDelta_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *alignmentServiceClient) SetPreset(
	ctx context.Context,
	in *SetPresetRequest,
	opts ...grpc.CallOption,
) (*SetPresetResponse, error) {
	out := new(SetPresetResponse)
	if err := c.cc.Invoke(ctx, AlignmentService_SetPreset_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *alignmentServiceClient) ListPresets(
	ctx context.Context,
	in *ListPresetsRequest,
	opts ...grpc.CallOption,
) (*ListPresetsResponse, error) {
	out := new(ListPresetsResponse)
	if err := c.cc.Invoke(ctx, AlignmentService_ListPresets_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *alignmentServiceClient) SyncTrait(
	ctx context.Context,
	in *SyncTraitRequest,
	opts ...grpc.CallOption,
) (*SyncTraitResponse, error) {
	out := new(SyncTraitResponse)
	if err := c.cc.Invoke(ctx, AlignmentService_SyncTrait_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *alignmentServiceClient) RegisterCharacter(
	ctx context.Context,
	in *RegisterCharacterRequest,
	opts ...grpc.CallOption,
) (*RegisterCharacterResponse, error) {
	out := new(RegisterCharacterResponse)
	if err := c.cc.Invoke(ctx, AlignmentService_RegisterCharacter_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *alignmentServiceClient) RemoveCharacter(
	ctx context.Context,
	in *RemoveCharacterRequest,
	opts ...grpc.CallOption,
) (*RemoveCharacterResponse, error) {
	out := new(RemoveCharacterResponse)
	if err := c.cc.Invoke(ctx, AlignmentService_RemoveCharacter_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *alignmentServiceClient) ListCharacters(
	ctx context.Context,
	in *ListCharactersRequest,
	opts ...grpc.CallOption,
) (*ListCharactersResponse, error) {
	out := new(ListCharactersResponse)
	if err := c.cc.Invoke(ctx, AlignmentService_ListCharacters_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *alignmentServiceClient) RenderParty(
	ctx context.Context,
	in *RenderPartyRequest,
	opts ...grpc.CallOption,
) (*RenderPartyResponse, error) {
	out := new(RenderPartyResponse)
	if err := c.cc.Invoke(ctx, AlignmentService_RenderParty_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *alignmentServiceClient) Hover(
	ctx context.Context,
	in *HoverRequest,
	opts ...grpc.CallOption,
) (*HoverResponse, error) {
	out := new(HoverResponse)
	if err := c.cc.Invoke(ctx, AlignmentService_Hover_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *alignmentServiceClient) RenderTab(
	ctx context.Context,
	in *RenderTabRequest,
	opts ...grpc.CallOption,
) (*RenderTabResponse, error) {
	out := new(RenderTabResponse)
	if err := c.cc.Invoke(ctx, AlignmentService_RenderTab_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
