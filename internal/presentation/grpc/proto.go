package grpc

// proto.go defines the gRPC server interface derived from
// credora/analysis/v1/analysis.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/credora/credit-analysis-service/api/gen/go/credora/analysis/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CreditAnalysisServiceServer is the server API for CreditAnalysisService.
// It mirrors the proto-generated interface from credora.analysis.v1.CreditAnalysisService.
type CreditAnalysisServiceServer interface {
	RegisterClient(context.Context, *RegisterClientRequest) (*RegisterClientResponse, error)
	GetClient(context.Context, *GetClientRequest) (*GetClientResponse, error)
	SubmitAnalysis(context.Context, *SubmitAnalysisRequest) (*SubmitAnalysisResponse, error)
	GetAnalysis(context.Context, *GetAnalysisRequest) (*GetAnalysisResponse, error)
	ListClientAnalyses(context.Context, *ListClientAnalysesRequest) (*ListClientAnalysesResponse, error)
	DecideAnalysis(context.Context, *DecideAnalysisRequest) (*DecideAnalysisResponse, error)
	ReevaluateAnalysis(context.Context, *ReevaluateAnalysisRequest) (*ReevaluateAnalysisResponse, error)
	AttachDocument(context.Context, *AttachDocumentRequest) (*AttachDocumentResponse, error)
	QuoteLoan(context.Context, *QuoteLoanRequest) (*QuoteLoanResponse, error)
	mustEmbedUnimplementedCreditAnalysisServiceServer()
}

// UnimplementedCreditAnalysisServiceServer provides forward-compatible default implementations.
type UnimplementedCreditAnalysisServiceServer struct{}

func (UnimplementedCreditAnalysisServiceServer) RegisterClient(context.Context, *RegisterClientRequest) (*RegisterClientResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterClient not implemented")
}
func (UnimplementedCreditAnalysisServiceServer) GetClient(context.Context, *GetClientRequest) (*GetClientResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetClient not implemented")
}
func (UnimplementedCreditAnalysisServiceServer) SubmitAnalysis(context.Context, *SubmitAnalysisRequest) (*SubmitAnalysisResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitAnalysis not implemented")
}
func (UnimplementedCreditAnalysisServiceServer) GetAnalysis(context.Context, *GetAnalysisRequest) (*GetAnalysisResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAnalysis not implemented")
}
func (UnimplementedCreditAnalysisServiceServer) ListClientAnalyses(context.Context, *ListClientAnalysesRequest) (*ListClientAnalysesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListClientAnalyses not implemented")
}
func (UnimplementedCreditAnalysisServiceServer) DecideAnalysis(context.Context, *DecideAnalysisRequest) (*DecideAnalysisResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DecideAnalysis not implemented")
}
func (UnimplementedCreditAnalysisServiceServer) ReevaluateAnalysis(context.Context, *ReevaluateAnalysisRequest) (*ReevaluateAnalysisResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReevaluateAnalysis not implemented")
}
func (UnimplementedCreditAnalysisServiceServer) AttachDocument(context.Context, *AttachDocumentRequest) (*AttachDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AttachDocument not implemented")
}
func (UnimplementedCreditAnalysisServiceServer) QuoteLoan(context.Context, *QuoteLoanRequest) (*QuoteLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QuoteLoan not implemented")
}
func (UnimplementedCreditAnalysisServiceServer) mustEmbedUnimplementedCreditAnalysisServiceServer() {}

// RegisterCreditAnalysisServiceServer registers the CreditAnalysisServiceServer with the gRPC server.
func RegisterCreditAnalysisServiceServer(s *grpclib.Server, srv CreditAnalysisServiceServer) {
	s.RegisterService(&_CreditAnalysisService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _CreditAnalysisService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "credora.analysis.v1.CreditAnalysisService",
	HandlerType: (*CreditAnalysisServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "RegisterClient", Handler: _CreditAnalysisService_RegisterClient_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "GetClient", Handler: _CreditAnalysisService_GetClient_Handler},                   //nolint:revive // gRPC handler registration
		{MethodName: "SubmitAnalysis", Handler: _CreditAnalysisService_SubmitAnalysis_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "GetAnalysis", Handler: _CreditAnalysisService_GetAnalysis_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "ListClientAnalyses", Handler: _CreditAnalysisService_ListClientAnalyses_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "DecideAnalysis", Handler: _CreditAnalysisService_DecideAnalysis_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "ReevaluateAnalysis", Handler: _CreditAnalysisService_ReevaluateAnalysis_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "AttachDocument", Handler: _CreditAnalysisService_AttachDocument_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "QuoteLoan", Handler: _CreditAnalysisService_QuoteLoan_Handler},                   //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditAnalysisService_RegisterClient_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterClientRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditAnalysisServiceServer).RegisterClient(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credora.analysis.v1.CreditAnalysisService/RegisterClient",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditAnalysisServiceServer).RegisterClient(ctx, req.(*RegisterClientRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditAnalysisService_GetClient_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetClientRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditAnalysisServiceServer).GetClient(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credora.analysis.v1.CreditAnalysisService/GetClient",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditAnalysisServiceServer).GetClient(ctx, req.(*GetClientRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditAnalysisService_SubmitAnalysis_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitAnalysisRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditAnalysisServiceServer).SubmitAnalysis(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credora.analysis.v1.CreditAnalysisService/SubmitAnalysis",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditAnalysisServiceServer).SubmitAnalysis(ctx, req.(*SubmitAnalysisRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditAnalysisService_GetAnalysis_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAnalysisRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditAnalysisServiceServer).GetAnalysis(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credora.analysis.v1.CreditAnalysisService/GetAnalysis",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditAnalysisServiceServer).GetAnalysis(ctx, req.(*GetAnalysisRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditAnalysisService_ListClientAnalyses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListClientAnalysesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditAnalysisServiceServer).ListClientAnalyses(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credora.analysis.v1.CreditAnalysisService/ListClientAnalyses",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditAnalysisServiceServer).ListClientAnalyses(ctx, req.(*ListClientAnalysesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditAnalysisService_DecideAnalysis_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DecideAnalysisRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditAnalysisServiceServer).DecideAnalysis(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credora.analysis.v1.CreditAnalysisService/DecideAnalysis",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditAnalysisServiceServer).DecideAnalysis(ctx, req.(*DecideAnalysisRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditAnalysisService_ReevaluateAnalysis_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReevaluateAnalysisRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditAnalysisServiceServer).ReevaluateAnalysis(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credora.analysis.v1.CreditAnalysisService/ReevaluateAnalysis",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditAnalysisServiceServer).ReevaluateAnalysis(ctx, req.(*ReevaluateAnalysisRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditAnalysisService_AttachDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AttachDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditAnalysisServiceServer).AttachDocument(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credora.analysis.v1.CreditAnalysisService/AttachDocument",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditAnalysisServiceServer).AttachDocument(ctx, req.(*AttachDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditAnalysisService_QuoteLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuoteLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditAnalysisServiceServer).QuoteLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credora.analysis.v1.CreditAnalysisService/QuoteLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditAnalysisServiceServer).QuoteLoan(ctx, req.(*QuoteLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}
