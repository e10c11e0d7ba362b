package resetcodes

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "reset_code:"
	codeDigits = 6
)

// Service - выдача и проверка одноразовых кодов сброса пароля.
// Коды хранятся в Redis с TTL, глобального состояния в процессе нет.
type Service struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	logger Logger
}

func NewService(rdb redis.Cmdable, ttl time.Duration, logger Logger) *Service {
	return &Service{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

// Issue генерирует новый код для пользователя и сохраняет его с TTL.
// Повторный вызов перезаписывает предыдущий код.
func (s *Service) Issue(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	code, err := generateCode()
	if err != nil {
		s.logger.Error("[Service.Issue] Failed to generate code: %v", err)
		return "", fmt.Errorf("%w: generate code", ErrInternal)
	}

	if err := s.rdb.Set(ctx, keyPrefix+email, code, s.ttl).Err(); err != nil {
		s.logger.Error("[Service.Issue] Failed to store code: email=%s, error=%v", email, err)
		return "", fmt.Errorf("%w: store code", ErrInternal)
	}

	s.logger.Info("[Service.Issue] Reset code issued: email=%s, ttl=%s", email, s.ttl)
	return code, nil
}

// Verify проверяет код и удаляет его при успехе - код одноразовый
func (s *Service) Verify(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return fmt.Errorf("%w: email and code are required", ErrInvalidInput)
	}

	key := keyPrefix + email

	stored, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		s.logger.Warn("[Service.Verify] No active code: email=%s", email)
		return ErrCodeMismatch
	}
	if err != nil {
		s.logger.Error("[Service.Verify] Failed to read code: email=%s, error=%v", email, err)
		return fmt.Errorf("%w: read code", ErrInternal)
	}

	if stored != code {
		s.logger.Warn("[Service.Verify] Code mismatch: email=%s", email)
		return ErrCodeMismatch
	}

	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Error("[Service.Verify] Failed to consume code: email=%s, error=%v", email, err)
		return fmt.Errorf("%w: consume code", ErrInternal)
	}

	s.logger.Info("[Service.Verify] Reset code verified: email=%s", email)
	return nil
}

func generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", codeDigits, n), nil
}
