package yellowcarv1connect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/adarkz/YellowCarGame-chef/pkg/api/yellowcarv1"
)

// CarServiceName is the fully-qualified name of the CarService service.
const CarServiceName = "yellowcar.v1.CarService"

const (
	CarServiceGenerateUploadUrlProcedure = "/yellowcar.v1.CarService/GenerateUploadUrl"
	CarServiceSubmitCarProcedure         = "/yellowcar.v1.CarService/SubmitCar"
	CarServiceGetCarSpotsProcedure       = "/yellowcar.v1.CarService/GetCarSpots"
	CarServiceGetLeaderboardProcedure    = "/yellowcar.v1.CarService/GetLeaderboard"
	CarServiceGetMyScoreProcedure        = "/yellowcar.v1.CarService/GetMyScore"
)

// CarServiceClient is a client for the yellowcar.v1.CarService service.
type CarServiceClient interface {
	GenerateUploadUrl(context.Context, *connect.Request[yellowcarv1.GenerateUploadUrlRequest]) (*connect.Response[yellowcarv1.GenerateUploadUrlResponse], error)
	SubmitCar(context.Context, *connect.Request[yellowcarv1.SubmitCarRequest]) (*connect.Response[yellowcarv1.SubmitCarResponse], error)
	GetCarSpots(context.Context, *connect.Request[yellowcarv1.GetCarSpotsRequest]) (*connect.Response[yellowcarv1.GetCarSpotsResponse], error)
	GetLeaderboard(context.Context, *connect.Request[yellowcarv1.GetLeaderboardRequest]) (*connect.Response[yellowcarv1.GetLeaderboardResponse], error)
	GetMyScore(context.Context, *connect.Request[yellowcarv1.GetMyScoreRequest]) (*connect.Response[yellowcarv1.GetMyScoreResponse], error)
}

// NewCarServiceClient constructs a client for the yellowcar.v1.CarService
// service.
func NewCarServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CarServiceClient {
	baseURL = trimBaseURL(baseURL)
	opts = clientOptions(opts)
	return &carServiceClient{
		generateUploadUrl: connect.NewClient[yellowcarv1.GenerateUploadUrlRequest, yellowcarv1.GenerateUploadUrlResponse](
			httpClient, baseURL+CarServiceGenerateUploadUrlProcedure, opts...),
		submitCar: connect.NewClient[yellowcarv1.SubmitCarRequest, yellowcarv1.SubmitCarResponse](
			httpClient, baseURL+CarServiceSubmitCarProcedure, opts...),
		getCarSpots: connect.NewClient[yellowcarv1.GetCarSpotsRequest, yellowcarv1.GetCarSpotsResponse](
			httpClient, baseURL+CarServiceGetCarSpotsProcedure, opts...),
		getLeaderboard: connect.NewClient[yellowcarv1.GetLeaderboardRequest, yellowcarv1.GetLeaderboardResponse](
			httpClient, baseURL+CarServiceGetLeaderboardProcedure, opts...),
		getMyScore: connect.NewClient[yellowcarv1.GetMyScoreRequest, yellowcarv1.GetMyScoreResponse](
			httpClient, baseURL+CarServiceGetMyScoreProcedure, opts...),
	}
}

type carServiceClient struct {
	generateUploadUrl *connect.Client[yellowcarv1.GenerateUploadUrlRequest, yellowcarv1.GenerateUploadUrlResponse]
	submitCar         *connect.Client[yellowcarv1.SubmitCarRequest, yellowcarv1.SubmitCarResponse]
	getCarSpots       *connect.Client[yellowcarv1.GetCarSpotsRequest, yellowcarv1.GetCarSpotsResponse]
	getLeaderboard    *connect.Client[yellowcarv1.GetLeaderboardRequest, yellowcarv1.GetLeaderboardResponse]
	getMyScore        *connect.Client[yellowcarv1.GetMyScoreRequest, yellowcarv1.GetMyScoreResponse]
}

func (c *carServiceClient) GenerateUploadUrl(ctx context.Context, req *connect.Request[yellowcarv1.GenerateUploadUrlRequest]) (*connect.Response[yellowcarv1.GenerateUploadUrlResponse], error) {
	return c.generateUploadUrl.CallUnary(ctx, req)
}

func (c *carServiceClient) SubmitCar(ctx context.Context, req *connect.Request[yellowcarv1.SubmitCarRequest]) (*connect.Response[yellowcarv1.SubmitCarResponse], error) {
	return c.submitCar.CallUnary(ctx, req)
}

func (c *carServiceClient) GetCarSpots(ctx context.Context, req *connect.Request[yellowcarv1.GetCarSpotsRequest]) (*connect.Response[yellowcarv1.GetCarSpotsResponse], error) {
	return c.getCarSpots.CallUnary(ctx, req)
}

func (c *carServiceClient) GetLeaderboard(ctx context.Context, req *connect.Request[yellowcarv1.GetLeaderboardRequest]) (*connect.Response[yellowcarv1.GetLeaderboardResponse], error) {
	return c.getLeaderboard.CallUnary(ctx, req)
}

func (c *carServiceClient) GetMyScore(ctx context.Context, req *connect.Request[yellowcarv1.GetMyScoreRequest]) (*connect.Response[yellowcarv1.GetMyScoreResponse], error) {
	return c.getMyScore.CallUnary(ctx, req)
}

// CarServiceHandler is implemented by the yellowcar.v1.CarService server.
type CarServiceHandler interface {
	GenerateUploadUrl(context.Context, *connect.Request[yellowcarv1.GenerateUploadUrlRequest]) (*connect.Response[yellowcarv1.GenerateUploadUrlResponse], error)
	SubmitCar(context.Context, *connect.Request[yellowcarv1.SubmitCarRequest]) (*connect.Response[yellowcarv1.SubmitCarResponse], error)
	GetCarSpots(context.Context, *connect.Request[yellowcarv1.GetCarSpotsRequest]) (*connect.Response[yellowcarv1.GetCarSpotsResponse], error)
	GetLeaderboard(context.Context, *connect.Request[yellowcarv1.GetLeaderboardRequest]) (*connect.Response[yellowcarv1.GetLeaderboardResponse], error)
	GetMyScore(context.Context, *connect.Request[yellowcarv1.GetMyScoreRequest]) (*connect.Response[yellowcarv1.GetMyScoreResponse], error)
}

// NewCarServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewCarServiceHandler(svc CarServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	generateUploadUrl := connect.NewUnaryHandler(CarServiceGenerateUploadUrlProcedure, svc.GenerateUploadUrl, opts...)
	submitCar := connect.NewUnaryHandler(CarServiceSubmitCarProcedure, svc.SubmitCar, opts...)
	getCarSpots := connect.NewUnaryHandler(CarServiceGetCarSpotsProcedure, svc.GetCarSpots, opts...)
	getLeaderboard := connect.NewUnaryHandler(CarServiceGetLeaderboardProcedure, svc.GetLeaderboard, opts...)
	getMyScore := connect.NewUnaryHandler(CarServiceGetMyScoreProcedure, svc.GetMyScore, opts...)
	return "/" + CarServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CarServiceGenerateUploadUrlProcedure:
			generateUploadUrl.ServeHTTP(w, r)
		case CarServiceSubmitCarProcedure:
			submitCar.ServeHTTP(w, r)
		case CarServiceGetCarSpotsProcedure:
			getCarSpots.ServeHTTP(w, r)
		case CarServiceGetLeaderboardProcedure:
			getLeaderboard.ServeHTTP(w, r)
		case CarServiceGetMyScoreProcedure:
			getMyScore.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedCarServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCarServiceHandler struct{}

func (UnimplementedCarServiceHandler) GenerateUploadUrl(context.Context, *connect.Request[yellowcarv1.GenerateUploadUrlRequest]) (*connect.Response[yellowcarv1.GenerateUploadUrlResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("yellowcar.v1.CarService.GenerateUploadUrl is not implemented"))
}

func (UnimplementedCarServiceHandler) SubmitCar(context.Context, *connect.Request[yellowcarv1.SubmitCarRequest]) (*connect.Response[yellowcarv1.SubmitCarResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("yellowcar.v1.CarService.SubmitCar is not implemented"))
}

func (UnimplementedCarServiceHandler) GetCarSpots(context.Context, *connect.Request[yellowcarv1.GetCarSpotsRequest]) (*connect.Response[yellowcarv1.GetCarSpotsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("yellowcar.v1.CarService.GetCarSpots is not implemented"))
}

func (UnimplementedCarServiceHandler) GetLeaderboard(context.Context, *connect.Request[yellowcarv1.GetLeaderboardRequest]) (*connect.Response[yellowcarv1.GetLeaderboardResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("yellowcar.v1.CarService.GetLeaderboard is not implemented"))
}

func (UnimplementedCarServiceHandler) GetMyScore(context.Context, *connect.Request[yellowcarv1.GetMyScoreRequest]) (*connect.Response[yellowcarv1.GetMyScoreResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("yellowcar.v1.CarService.GetMyScore is not implemented"))
}
