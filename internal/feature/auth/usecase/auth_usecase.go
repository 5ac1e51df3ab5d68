// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"login_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じユーザー名のユーザーが既に存在する場合、ErrUsernameAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername は指定されたユーザー名に一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// FaceRecognizer は外部の顔認識マイクロサービスを抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（facerec）ではなくコンシューマー（usecase）が定義します。
type FaceRecognizer interface {
	// Recognize はBase64画像を認識サービスに送信し、候補ユーザーIDを返します。
	// マッチしない場合・通信障害・タイムアウトはすべてErrFaceNotRecognizedとして返します。
	Recognize(ctx context.Context, imageBase64 string) (uint, error)
}

// authUsecase は認証ビジネスロジックを実装します。
// 3つの操作（Login / Register / FaceLogin）はいずれも状態を持たず、1リクエストで完結します。
type authUsecase struct {
	users      UserRepository
	recognizer FaceRecognizer
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, recognizer FaceRecognizer) *authUsecase {
	return &authUsecase{
		users:      users,
		recognizer: recognizer,
	}
}

// Login はユーザー名とパスワードでユーザーを認証します。
// 成功時はパスワードハッシュをクリアしたユーザーを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := u.users.FindByUsername(ctx, username)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.PasswordHash
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、同一の汎用エラーを返す
	// （「ユーザー名が存在しない」と「パスワードが違う」を区別させない）
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	return user.Sanitize(), nil
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録します。
// ユーザー名が既に使われている場合はErrUsernameAlreadyExistsを返します。
// ストレージ障害は業務エラーと区別するため、そのままラップして返します。
func (u *authUsecase) Register(ctx context.Context, username, password string) (*entity.User, error) {
	// ユニーク制約違反を待たずに事前チェックする（元サービスと同じ順序）
	if _, err := u.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Username: username, PasswordHash: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		// 事前チェックとINSERTの間に同名ユーザーが作られた場合もここで検出される
		if errors.Is(err, ErrUsernameAlreadyExists) {
			return nil, ErrUsernameAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user.Sanitize(), nil
}

// FaceLogin はBase64画像から顔認識でユーザーを認証します。
// 画像が空の場合はリモート呼び出しを行わずにErrEmptyImageを返します。
// 候補IDが保存済みユーザーに解決できない場合も、IDを漏らさずErrFaceNotRecognizedを返します。
func (u *authUsecase) FaceLogin(ctx context.Context, imageBase64 string) (*entity.User, error) {
	if imageBase64 == "" {
		return nil, ErrEmptyImage
	}

	uid, err := u.recognizer.Recognize(ctx, imageBase64)
	if err != nil {
		return nil, ErrFaceNotRecognized
	}

	user, err := u.users.FindByID(ctx, uid)
	if err != nil {
		// 外部サービスが古いIDを返した場合（ストアと不整合）もノーマッチ扱い
		return nil, ErrFaceNotRecognized
	}

	return user.Sanitize(), nil
}
