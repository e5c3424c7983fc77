package grpc

// proto.go defines the gRPC server interface derived from
// stellarcredit/credit/v1/credit.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/stellarcredit/credit-service/api/gen/go/stellarcredit/credit/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CreditServiceServer is the server API for CreditService.
// It mirrors the proto-generated interface from stellarcredit.credit.v1.CreditService.
type CreditServiceServer interface {
	Initialize(context.Context, *InitializeRequest) (*InitializeResponse, error)
	StoreScore(context.Context, *StoreScoreRequest) (*ScoreResponse, error)
	GetScore(context.Context, *GetScoreRequest) (*ScoreResponse, error)
	RequestLoan(context.Context, *RequestLoanRequest) (*LoanResponse, error)
	ApproveLoan(context.Context, *ApproveLoanRequest) (*LoanResponse, error)
	RejectLoan(context.Context, *RejectLoanRequest) (*LoanResponse, error)
	GetLoan(context.Context, *GetLoanRequest) (*LoanResponse, error)
	GetLoanOffers(context.Context, *GetLoanOffersRequest) (*LoanOffersResponse, error)
	mustEmbedUnimplementedCreditServiceServer()
}

// UnimplementedCreditServiceServer provides forward-compatible default implementations.
type UnimplementedCreditServiceServer struct{}

func (UnimplementedCreditServiceServer) Initialize(context.Context, *InitializeRequest) (*InitializeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Initialize not implemented")
}
func (UnimplementedCreditServiceServer) StoreScore(context.Context, *StoreScoreRequest) (*ScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StoreScore not implemented")
}
func (UnimplementedCreditServiceServer) GetScore(context.Context, *GetScoreRequest) (*ScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetScore not implemented")
}
func (UnimplementedCreditServiceServer) RequestLoan(context.Context, *RequestLoanRequest) (*LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RequestLoan not implemented")
}
func (UnimplementedCreditServiceServer) ApproveLoan(context.Context, *ApproveLoanRequest) (*LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApproveLoan not implemented")
}
func (UnimplementedCreditServiceServer) RejectLoan(context.Context, *RejectLoanRequest) (*LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RejectLoan not implemented")
}
func (UnimplementedCreditServiceServer) GetLoan(context.Context, *GetLoanRequest) (*LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoan not implemented")
}
func (UnimplementedCreditServiceServer) GetLoanOffers(context.Context, *GetLoanOffersRequest) (*LoanOffersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoanOffers not implemented")
}
func (UnimplementedCreditServiceServer) mustEmbedUnimplementedCreditServiceServer() {}

// RegisterCreditServiceServer registers the CreditServiceServer with the gRPC server.
func RegisterCreditServiceServer(s *grpclib.Server, srv CreditServiceServer) {
	s.RegisterService(&_CreditService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _CreditService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "stellarcredit.credit.v1.CreditService",
	HandlerType: (*CreditServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "Initialize", Handler: _CreditService_Initialize_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "StoreScore", Handler: _CreditService_StoreScore_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "GetScore", Handler: _CreditService_GetScore_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "RequestLoan", Handler: _CreditService_RequestLoan_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "ApproveLoan", Handler: _CreditService_ApproveLoan_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "RejectLoan", Handler: _CreditService_RejectLoan_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "GetLoan", Handler: _CreditService_GetLoan_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "GetLoanOffers", Handler: _CreditService_GetLoanOffers_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_Initialize_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(InitializeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).Initialize(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/stellarcredit.credit.v1.CreditService/Initialize",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).Initialize(ctx, req.(*InitializeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_StoreScore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(StoreScoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).StoreScore(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/stellarcredit.credit.v1.CreditService/StoreScore",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).StoreScore(ctx, req.(*StoreScoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_GetScore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetScoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).GetScore(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/stellarcredit.credit.v1.CreditService/GetScore",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).GetScore(ctx, req.(*GetScoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_RequestLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RequestLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).RequestLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/stellarcredit.credit.v1.CreditService/RequestLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).RequestLoan(ctx, req.(*RequestLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_ApproveLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApproveLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).ApproveLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/stellarcredit.credit.v1.CreditService/ApproveLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).ApproveLoan(ctx, req.(*ApproveLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_RejectLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RejectLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).RejectLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/stellarcredit.credit.v1.CreditService/RejectLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).RejectLoan(ctx, req.(*RejectLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_GetLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).GetLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/stellarcredit.credit.v1.CreditService/GetLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).GetLoan(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_GetLoanOffers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanOffersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).GetLoanOffers(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/stellarcredit.credit.v1.CreditService/GetLoanOffers",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).GetLoanOffers(ctx, req.(*GetLoanOffersRequest))
	}
	return interceptor(ctx, in, info, handler)
}
