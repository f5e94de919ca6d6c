package request

type SignUp struct {
	Name            string `form:"name" json:"name"`
	Username        string `form:"username" json:"username" binding:"notblank,max=50"`
	Password        string `form:"password" json:"password" binding:"required,min=6"`
	PasswordConfirm string `form:"password_confirm" json:"password_confirm" binding:"eqfield=Password"`
}

type SignIn struct {
	Username string `form:"username" json:"username" binding:"notblank"`
	Password string `form:"password" json:"password" binding:"required"`
	Next     string `form:"next" json:"next"`
}
