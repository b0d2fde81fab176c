package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/campushub/reservation-platform/internal/model"
	"github.com/campushub/reservation-platform/internal/repository"
)

// Время жизни одноразового кода входа.
const loginCodeTTL = 10 * time.Minute

var (
	ErrCodeInvalid  = errors.New("login code is invalid or expired")
	ErrUserInactive = errors.New("account is deactivated")
)

// CodeSender доставляет код входа на почту. Сама доставка (SMTP) — внешний
// коллаборатор; в тестах — мок.
type CodeSender interface {
	SendLoginCode(ctx context.Context, email, code string) error
}

// AuthService — одноразовые коды входа по почте. Единственное хранилище
// кодов — таблица login_codes; зеркала в памяти процесса нет намеренно.
type AuthService struct {
	users  repository.UserRepository
	codes  repository.LoginCodeRepository
	sender CodeSender
	clock  Clock
}

func NewAuthService(
	users repository.UserRepository,
	codes repository.LoginCodeRepository,
	sender CodeSender,
	clock Clock,
) *AuthService {
	if clock == nil {
		clock = SystemClock()
	}
	return &AuthService{users: users, codes: codes, sender: sender, clock: clock}
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// IssueCode генерирует шестизначный код, сохраняет его bcrypt-хэш и
// отправляет код на почту существующего активного пользователя.
func (s *AuthService) IssueCode(ctx context.Context, email string) error {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrNotFound
		}
		return err
	}
	if !u.IsActive {
		return ErrUserInactive
	}

	code, err := generateCode()
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	rec := &model.LoginCode{
		Email:     u.Email,
		CodeHash:  string(hash),
		ExpiresAt: now.Add(loginCodeTTL),
	}
	if err := s.codes.Create(ctx, rec); err != nil {
		return storeFailure("store login code", err)
	}

	return s.sender.SendLoginCode(ctx, u.Email, code)
}

// VerifyCode сверяет код с последним активным хэшем и гасит его.
// Коды строго одноразовые.
func (s *AuthService) VerifyCode(ctx context.Context, email, code string) (*model.User, error) {
	now := s.clock.Now()

	rec, err := s.codes.FindActive(ctx, email, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCodeInvalid
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(rec.CodeHash), []byte(code)) != nil {
		return nil, ErrCodeInvalid
	}

	if err := s.codes.MarkUsed(ctx, rec.ID, now); err != nil {
		return nil, storeFailure("mark code used", err)
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrUserInactive
	}
	return u, nil
}

// SweepExpiredCodes — идемпотентная чистка протухших кодов; дергается
// внешним таймером из main.
func (s *AuthService) SweepExpiredCodes(ctx context.Context) (int64, error) {
	n, err := s.codes.DeleteExpired(ctx, s.clock.Now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Printf("auth: deleted %d expired login codes", n)
	}
	return n, nil
}
