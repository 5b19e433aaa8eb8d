package yellowcarv1

// User is a registered account as seen by its owner.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	Image     string `json:"image,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}

// CarSpot is one submitted sighting.
type CarSpot struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	// ImageID is the storage reference returned by the upload endpoint.
	ImageID string `json:"imageId"`
	// ImageURL is empty when the image can no longer be resolved.
	ImageURL    string `json:"imageUrl"`
	Points      int64  `json:"points"`
	Verified    bool   `json:"verified"`
	Description string `json:"description,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
}

// Score holds a user's running totals.
type Score struct {
	UserID      string `json:"userId"`
	TotalPoints int64  `json:"totalPoints"`
	TotalSpots  int64  `json:"totalSpots"`
}

type LeaderboardEntry struct {
	UserID      string `json:"userId"`
	TotalPoints int64  `json:"totalPoints"`
	TotalSpots  int64  `json:"totalSpots"`
	Username    string `json:"username"`
	Image       string `json:"image,omitempty"`
}

type GenerateUploadUrlRequest struct{}

type GenerateUploadUrlResponse struct {
	// UploadURL accepts a single POST with the raw image as body.
	UploadURL string `json:"uploadUrl"`
	StorageID string `json:"storageId"`
	ExpiresAt int64  `json:"expiresAt"`
}

type SubmitCarRequest struct {
	ImageID     string `json:"imageId"`
	Description string `json:"description,omitempty"`
}

type SubmitCarResponse struct {
	Spot  *CarSpot `json:"spot"`
	Score *Score   `json:"score"`
}

type GetCarSpotsRequest struct{}

type GetCarSpotsResponse struct {
	Spots []*CarSpot `json:"spots"`
}

type GetLeaderboardRequest struct{}

type GetLeaderboardResponse struct {
	Entries []*LeaderboardEntry `json:"entries"`
}

type GetMyScoreRequest struct{}

type GetMyScoreResponse struct {
	Score *Score `json:"score"`
}

// Friendship is the caller's side of a friendship.
type Friendship struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	FriendID  string `json:"friendId"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"createdAt"`
}

// Friend is an accepted friendship with the friend's details.
type Friend struct {
	ID          string `json:"id"`
	FriendID    string `json:"friendId"`
	Email       string `json:"email"`
	Status      string `json:"status"`
	TotalPoints int64  `json:"totalPoints"`
	TotalSpots  int64  `json:"totalSpots"`
	CreatedAt   int64  `json:"createdAt"`
}

type AddFriendRequest struct {
	FriendEmail string `json:"friendEmail"`
}

type AddFriendResponse struct {
	Friendship *Friendship `json:"friendship"`
}

type GetFriendsRequest struct{}

type GetFriendsResponse struct {
	Friends []*Friend `json:"friends"`
}
