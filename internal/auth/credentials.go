package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/hitoshi/staffroll/internal/model"
	"github.com/hitoshi/staffroll/internal/repository"
	"github.com/hitoshi/staffroll/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// DefaultAdmin は管理者が1人もいない環境で自動作成する初期管理者。
type DefaultAdmin struct {
	Email    string
	Password string
	Name     string
}

// CredentialStore は管理者の資格情報を管理する。
// パスワードは平文で保持せず、bcryptハッシュのみを永続化する。
type CredentialStore struct {
	repo         repository.AdminRepository
	cost         int
	defaultAdmin DefaultAdmin

	seeded atomic.Bool
	seedMu sync.Mutex

	dummyOnce sync.Once
	dummyHash []byte
}

// NewCredentialStore はCredentialStoreを生成する。
// costがbcryptの許容範囲外の場合はbcrypt.DefaultCostを使用する。
func NewCredentialStore(repo repository.AdminRepository, cost int, defaultAdmin DefaultAdmin) *CredentialStore {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &CredentialStore{
		repo:         repo,
		cost:         cost,
		defaultAdmin: defaultAdmin,
	}
}

// FindByEmail はメールアドレスを正規化して管理者を検索する。見つからない場合はnilを返す。
func (s *CredentialStore) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	admin, err := s.repo.FindByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return admin, nil
}

// Create はパスワードをハッシュ化して管理者を登録する。
// 同じメールアドレスが既に存在する場合はErrEmailTakenを返す。
func (s *CredentialStore) Create(ctx context.Context, name, email, password string) (*model.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.Admin{
		ID:           uuid.New().String(),
		Email:        validation.NormalizeEmail(email),
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return admin, nil
}

// VerifyPassword はcandidateが管理者のパスワードと一致するかを判定する。
// adminがnilの場合もダミーハッシュと比較し、応答時間で存在有無が漏れないようにする。
func (s *CredentialStore) VerifyPassword(admin *model.Admin, candidate string) bool {
	if admin == nil {
		_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(candidate))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(candidate)) == nil
}

func (s *CredentialStore) dummy() []byte {
	s.dummyOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), s.cost)
		if err != nil {
			slog.Error("failed to generate dummy hash", slog.String("error", err.Error()))
			return
		}
		s.dummyHash = h
	})
	return s.dummyHash
}

// EnsureDefaultAdmin は管理者が1人もいない場合に初期管理者を作成する。
// 一度成功した後はストアに問い合わせない。並行呼び出しでも作成は高々1件で、
// 競合で一意制約に当たった場合は作成済みとみなす。
func (s *CredentialStore) EnsureDefaultAdmin(ctx context.Context) error {
	if s.seeded.Load() {
		return nil
	}
	s.seedMu.Lock()
	defer s.seedMu.Unlock()
	if s.seeded.Load() {
		return nil
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if n > 0 {
		s.seeded.Store(true)
		return nil
	}

	if s.defaultAdmin.Email == "" || s.defaultAdmin.Password == "" {
		return errors.New("default admin credentials are not configured")
	}

	admin, err := s.Create(ctx, s.defaultAdmin.Name, s.defaultAdmin.Email, s.defaultAdmin.Password)
	if err != nil && !errors.Is(err, ErrEmailTaken) {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}
	if admin != nil {
		slog.Info("default admin created",
			slog.String("admin_id", admin.ID),
			slog.String("email", admin.Email),
		)
	}

	s.seeded.Store(true)
	return nil
}
