package types

type RegisterRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Nickname string `json:"nickname" binding:"required,max=64"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	UserID      int64  `json:"user_id,string"`
	Nickname    string `json:"nickname"`
	AccessToken string `json:"access_token"`
}
