package resetcodes

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

const testTTL = 15 * time.Minute

func TestIssue_StoresCodeWithTTL(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	svc := NewService(rdb, testTTL, nopLogger{})

	mock.Regexp().ExpectSet("reset_code:user@example.com", `^\d{6}$`, testTTL).SetVal("OK")

	code, err := svc.Issue(context.Background(), "user@example.com")

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssue_EmptyEmail(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	svc := NewService(rdb, testTTL, nopLogger{})

	_, err := svc.Issue(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestIssue_StorageError(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	svc := NewService(rdb, testTTL, nopLogger{})

	mock.Regexp().ExpectSet("reset_code:user@example.com", `^\d{6}$`, testTTL).
		SetErr(assert.AnError)

	_, err := svc.Issue(context.Background(), "user@example.com")

	assert.ErrorIs(t, err, ErrInternal)
}

func TestVerify_ConsumesCode(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	svc := NewService(rdb, testTTL, nopLogger{})

	mock.ExpectGet("reset_code:user@example.com").SetVal("123456")
	mock.ExpectDel("reset_code:user@example.com").SetVal(1)

	err := svc.Verify(context.Background(), "user@example.com", "123456")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerify_WrongCode(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	svc := NewService(rdb, testTTL, nopLogger{})

	mock.ExpectGet("reset_code:user@example.com").SetVal("123456")

	err := svc.Verify(context.Background(), "user@example.com", "654321")

	assert.ErrorIs(t, err, ErrCodeMismatch)
}

func TestVerify_ExpiredCode(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	svc := NewService(rdb, testTTL, nopLogger{})

	// Истёкший ключ неотличим от никогда не выданного
	mock.ExpectGet("reset_code:user@example.com").RedisNil()

	err := svc.Verify(context.Background(), "user@example.com", "123456")

	assert.ErrorIs(t, err, ErrCodeMismatch)
}

func TestVerify_MissingInput(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	svc := NewService(rdb, testTTL, nopLogger{})

	assert.ErrorIs(t, svc.Verify(context.Background(), "", "123456"), ErrInvalidInput)
	assert.ErrorIs(t, svc.Verify(context.Background(), "user@example.com", ""), ErrInvalidInput)
}
