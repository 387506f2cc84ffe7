package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"dating/config"
	"dating/internal/domain/repository"
	"dating/internal/infra/auth"
	"dating/internal/infra/blob"
	"dating/internal/infra/persistence/gormdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"gorm.io/gorm"
)

// Smallest PNG the sniffer recognises: signature plus IHDR.
var pngBytes = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x02, 0x00, 0x00, 0x00, 0x90, 0x77, 0x53, 0xDE,
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{Argon2Time: 1, Argon2Memory: 1024, Argon2Threads: 1},
		Blob: config.BlobConfig{
			PublicBaseURL:    "https://cdn.example.com",
			KeyPrefix:        "photos/",
			MaxUploadBytes:   1 << 20,
			AllowedMIMETypes: []string{"image/jpeg", "image/png"},
		},
	}
	cfg.SecretKey.Token = strings.Repeat("s", config.MinTokenKeyLength)

	return cfg
}

// stack is a fully wired set of services on an in-memory SQLite database and bucket.
type stack struct {
	db        *gorm.DB
	repos     repository.RepositoryFactory
	txManager repository.TransactionManager
	store     *blob.Store
	accounts  *accountService
	members   *memberService
	photos    *photoService
}

func newStack(t *testing.T) *stack {
	t.Helper()

	db, err := gormdb.OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, gormdb.Migrate(context.Background(), db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	cfg := newTestConfig()
	logger := newDiscardLogger()
	repos := gormdb.NewRepositoryFactory(db)
	txManager := gormdb.NewTransactionManager(db)
	store := blob.NewStore(bucket, cfg.Blob)

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return &stack{
		db:        db,
		repos:     repos,
		txManager: txManager,
		store:     store,
		accounts: NewAccountService(AccountServiceParams{
			TxManager:    txManager,
			AccountRepo:  repos.NewAccountRepository(),
			Hasher:       auth.NewArgon2Hasher(cfg),
			TokenService: tokenService,
			Logger:       logger,
		}).(*accountService),
		members: NewMemberService(MemberServiceParams{
			TxManager:  txManager,
			MemberRepo: repos.NewMemberRepository(),
			PhotoRepo:  repos.NewPhotoRepository(),
			Logger:     logger,
		}).(*memberService),
		photos: NewPhotoService(PhotoServiceParams{
			TxManager: txManager,
			BlobStore: blob.AsBlobStore(store),
			Config:    cfg,
			Logger:    logger,
		}).(*photoService),
	}
}
