package reset_codes

// IssueCodeRequest HTTP request model
type IssueCodeRequest struct {
	Email string `json:"email"`
}

// IssueCodeResponse HTTP response model.
// Код возвращается вызывающему сервису, который отправит его пользователю
type IssueCodeResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// VerifyCodeRequest HTTP request model
type VerifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// VerifyCodeResponse HTTP response model
type VerifyCodeResponse struct {
	Message string `json:"message"`
}
