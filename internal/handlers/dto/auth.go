package dto

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Nickname string `json:"nickname" binding:"required,min=2,max=20"`
	AgeRange string `json:"age_range" binding:"required,oneof=20s_early 20s_late 30s_early 30s_late 40s 50s+"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Nickname  *string `json:"nickname" binding:"omitempty,min=2,max=20"`
	AgeRange  *string `json:"age_range" binding:"omitempty,oneof=20s_early 20s_late 30s_early 30s_late 40s 50s+"`
	Intro     *string `json:"intro" binding:"omitempty,max=500"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url"`
}

type ProfileResponse struct {
	UserInfo
	Intro string `json:"intro,omitempty"`
}
