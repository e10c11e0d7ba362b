package resetcodes

import "errors"

var (
	// ErrCodeMismatch возвращается, когда код не совпадает или уже истёк
	// Истёкший и неверный коды неразличимы для вызывающей стороны намеренно
	ErrCodeMismatch = errors.New("resetcodes: code is invalid or expired")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resetcodes: invalid input data")

	// ErrInternal возвращается при ошибках хранилища кодов
	ErrInternal = errors.New("resetcodes: internal error")
)
