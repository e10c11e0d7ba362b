package accountservice

// Customer модель клиента из сервиса аккаунтов
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Venue модель площадки (turf) из сервиса аккаунтов
// Sports — закрытый набор видов спорта, заявленных владельцем
type Venue struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Sports   []string `json:"sports"`
}

// ErrorResponse модель ошибки от сервиса аккаунтов
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
