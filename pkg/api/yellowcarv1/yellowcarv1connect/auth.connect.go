package yellowcarv1connect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/adarkz/YellowCarGame-chef/pkg/api/yellowcarv1"
)

// AuthServiceName is the fully-qualified name of the AuthService service.
const AuthServiceName = "yellowcar.v1.AuthService"

const (
	AuthServiceRegisterProcedure       = "/yellowcar.v1.AuthService/Register"
	AuthServiceLoginProcedure          = "/yellowcar.v1.AuthService/Login"
	AuthServiceGetCurrentUserProcedure = "/yellowcar.v1.AuthService/GetCurrentUser"
)

// AuthServiceClient is a client for the yellowcar.v1.AuthService service.
type AuthServiceClient interface {
	Register(context.Context, *connect.Request[yellowcarv1.RegisterRequest]) (*connect.Response[yellowcarv1.RegisterResponse], error)
	Login(context.Context, *connect.Request[yellowcarv1.LoginRequest]) (*connect.Response[yellowcarv1.LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[yellowcarv1.GetCurrentUserRequest]) (*connect.Response[yellowcarv1.GetCurrentUserResponse], error)
}

// NewAuthServiceClient constructs a client for the yellowcar.v1.AuthService
// service. baseURL is the server origin, e.g. http://localhost:8080.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = trimBaseURL(baseURL)
	opts = clientOptions(opts)
	return &authServiceClient{
		register: connect.NewClient[yellowcarv1.RegisterRequest, yellowcarv1.RegisterResponse](
			httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login: connect.NewClient[yellowcarv1.LoginRequest, yellowcarv1.LoginResponse](
			httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		getCurrentUser: connect.NewClient[yellowcarv1.GetCurrentUserRequest, yellowcarv1.GetCurrentUserResponse](
			httpClient, baseURL+AuthServiceGetCurrentUserProcedure, opts...),
	}
}

type authServiceClient struct {
	register       *connect.Client[yellowcarv1.RegisterRequest, yellowcarv1.RegisterResponse]
	login          *connect.Client[yellowcarv1.LoginRequest, yellowcarv1.LoginResponse]
	getCurrentUser *connect.Client[yellowcarv1.GetCurrentUserRequest, yellowcarv1.GetCurrentUserResponse]
}

func (c *authServiceClient) Register(ctx context.Context, req *connect.Request[yellowcarv1.RegisterRequest]) (*connect.Response[yellowcarv1.RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[yellowcarv1.LoginRequest]) (*connect.Response[yellowcarv1.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[yellowcarv1.GetCurrentUserRequest]) (*connect.Response[yellowcarv1.GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

// AuthServiceHandler is implemented by the yellowcar.v1.AuthService server.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[yellowcarv1.RegisterRequest]) (*connect.Response[yellowcarv1.RegisterResponse], error)
	Login(context.Context, *connect.Request[yellowcarv1.LoginRequest]) (*connect.Response[yellowcarv1.LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[yellowcarv1.GetCurrentUserRequest]) (*connect.Response[yellowcarv1.GetCurrentUserResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	register := connect.NewUnaryHandler(AuthServiceRegisterProcedure, svc.Register, opts...)
	login := connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...)
	getCurrentUser := connect.NewUnaryHandler(AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...)
	return "/" + AuthServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AuthServiceRegisterProcedure:
			register.ServeHTTP(w, r)
		case AuthServiceLoginProcedure:
			login.ServeHTTP(w, r)
		case AuthServiceGetCurrentUserProcedure:
			getCurrentUser.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedAuthServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedAuthServiceHandler struct{}

func (UnimplementedAuthServiceHandler) Register(context.Context, *connect.Request[yellowcarv1.RegisterRequest]) (*connect.Response[yellowcarv1.RegisterResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("yellowcar.v1.AuthService.Register is not implemented"))
}

func (UnimplementedAuthServiceHandler) Login(context.Context, *connect.Request[yellowcarv1.LoginRequest]) (*connect.Response[yellowcarv1.LoginResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("yellowcar.v1.AuthService.Login is not implemented"))
}

func (UnimplementedAuthServiceHandler) GetCurrentUser(context.Context, *connect.Request[yellowcarv1.GetCurrentUserRequest]) (*connect.Response[yellowcarv1.GetCurrentUserResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("yellowcar.v1.AuthService.GetCurrentUser is not implemented"))
}
