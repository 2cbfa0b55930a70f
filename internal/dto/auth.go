package dto

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type AdminIdentity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type EnvCheckResponse struct {
	AdminUserConfigured     bool   `json:"admin_user_configured"`
	AdminUserValueSample    string `json:"admin_user_value_sample"`
	AdminPasswordConfigured bool   `json:"admin_password_configured"`
	AdminPasswordIsHashed   bool   `json:"admin_password_is_hashed"`
}
