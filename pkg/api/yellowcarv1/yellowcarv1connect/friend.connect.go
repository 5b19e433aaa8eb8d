package yellowcarv1connect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/adarkz/YellowCarGame-chef/pkg/api/yellowcarv1"
)

// FriendServiceName is the fully-qualified name of the FriendService service.
const FriendServiceName = "yellowcar.v1.FriendService"

const (
	FriendServiceAddFriendProcedure  = "/yellowcar.v1.FriendService/AddFriend"
	FriendServiceGetFriendsProcedure = "/yellowcar.v1.FriendService/GetFriends"
)

// FriendServiceClient is a client for the yellowcar.v1.FriendService service.
type FriendServiceClient interface {
	AddFriend(context.Context, *connect.Request[yellowcarv1.AddFriendRequest]) (*connect.Response[yellowcarv1.AddFriendResponse], error)
	GetFriends(context.Context, *connect.Request[yellowcarv1.GetFriendsRequest]) (*connect.Response[yellowcarv1.GetFriendsResponse], error)
}

// NewFriendServiceClient constructs a client for the
// yellowcar.v1.FriendService service.
func NewFriendServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) FriendServiceClient {
	baseURL = trimBaseURL(baseURL)
	opts = clientOptions(opts)
	return &friendServiceClient{
		addFriend: connect.NewClient[yellowcarv1.AddFriendRequest, yellowcarv1.AddFriendResponse](
			httpClient, baseURL+FriendServiceAddFriendProcedure, opts...),
		getFriends: connect.NewClient[yellowcarv1.GetFriendsRequest, yellowcarv1.GetFriendsResponse](
			httpClient, baseURL+FriendServiceGetFriendsProcedure, opts...),
	}
}

type friendServiceClient struct {
	addFriend  *connect.Client[yellowcarv1.AddFriendRequest, yellowcarv1.AddFriendResponse]
	getFriends *connect.Client[yellowcarv1.GetFriendsRequest, yellowcarv1.GetFriendsResponse]
}

func (c *friendServiceClient) AddFriend(ctx context.Context, req *connect.Request[yellowcarv1.AddFriendRequest]) (*connect.Response[yellowcarv1.AddFriendResponse], error) {
	return c.addFriend.CallUnary(ctx, req)
}

func (c *friendServiceClient) GetFriends(ctx context.Context, req *connect.Request[yellowcarv1.GetFriendsRequest]) (*connect.Response[yellowcarv1.GetFriendsResponse], error) {
	return c.getFriends.CallUnary(ctx, req)
}

// FriendServiceHandler is implemented by the yellowcar.v1.FriendService
// server.
type FriendServiceHandler interface {
	AddFriend(context.Context, *connect.Request[yellowcarv1.AddFriendRequest]) (*connect.Response[yellowcarv1.AddFriendResponse], error)
	GetFriends(context.Context, *connect.Request[yellowcarv1.GetFriendsRequest]) (*connect.Response[yellowcarv1.GetFriendsResponse], error)
}

// NewFriendServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewFriendServiceHandler(svc FriendServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	addFriend := connect.NewUnaryHandler(FriendServiceAddFriendProcedure, svc.AddFriend, opts...)
	getFriends := connect.NewUnaryHandler(FriendServiceGetFriendsProcedure, svc.GetFriends, opts...)
	return "/" + FriendServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case FriendServiceAddFriendProcedure:
			addFriend.ServeHTTP(w, r)
		case FriendServiceGetFriendsProcedure:
			getFriends.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedFriendServiceHandler returns CodeUnimplemented from all
// methods.
type UnimplementedFriendServiceHandler struct{}

func (UnimplementedFriendServiceHandler) AddFriend(context.Context, *connect.Request[yellowcarv1.AddFriendRequest]) (*connect.Response[yellowcarv1.AddFriendResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("yellowcar.v1.FriendService.AddFriend is not implemented"))
}

func (UnimplementedFriendServiceHandler) GetFriends(context.Context, *connect.Request[yellowcarv1.GetFriendsRequest]) (*connect.Response[yellowcarv1.GetFriendsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("yellowcar.v1.FriendService.GetFriends is not implemented"))
}
