package integration

import (
	"bytes"
	"context"
	"log"
	"mime/multipart"
	"net/textproto"
	"os"
	"testing"
	"time"

	"noteshare-be/internal/dto"
	"noteshare-be/internal/entity"
	"noteshare-be/internal/repository/specification"
	"noteshare-be/internal/repository/unitofwork"
	"noteshare-be/internal/service"
	"noteshare-be/pkg/database"
	"noteshare-be/pkg/events"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopMailer struct{}

func (noopMailer) SendActivationLink(toEmail, activationURL string) error { return nil }

type noopPublisher struct{}

func (noopPublisher) PublishEvent(ctx context.Context, event events.Event) error { return nil }

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.NoteRepository())
	assert.NotNil(t, uow.CategoryRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Note Lifecycle With Like Counter", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:             uuid.New(),
			Username:       "it-" + uuid.New().String()[:8],
			Email:          "test-integration-" + uuid.New().String() + "@example.com",
			PasswordHash:   "not-a-real-hash",
			IsActive:       true,
			ActivationGuid: uuid.New(),
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		note := &entity.Note{
			Id:               uuid.New(),
			Title:            "Integration Note",
			Text:             "body",
			OwnerId:          user.Id,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
			ModifiedUsername: user.Username,
		}
		require.NoError(t, uow.NoteRepository().Create(ctx, note))

		// Transactional like + counter bump
		require.NoError(t, uow.Begin(ctx))
		like := &entity.NoteLike{
			Id:        uuid.New(),
			NoteId:    note.Id,
			UserId:    user.Id,
			CreatedAt: time.Now(),
		}
		require.NoError(t, uow.NoteLikeRepository().Create(ctx, like))
		require.NoError(t, uow.NoteRepository().AdjustLikeCount(ctx, note.Id, 1))
		require.NoError(t, uow.Commit())

		found, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: note.Id})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, 1, found.LikeCount)

		// Cleanup
		assert.NoError(t, uow.NoteLikeRepository().DeleteByNote(ctx, note.Id))
		assert.NoError(t, uow.NoteRepository().Delete(ctx, note.Id))
		assert.NoError(t, uow.UserRepository().Delete(ctx, user.Id))
	})

	t.Run("FindOne Absence Is Not An Error", func(t *testing.T) {
		found, err := uow.NoteRepository().FindOne(context.Background(), specification.ByID{ID: uuid.New()})
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Account Lifecycle Register Activate Login", func(t *testing.T) {
		ctx := context.Background()
		authService := service.NewAuthService(uowFactory, noopMailer{}, noopPublisher{}, "http://localhost:3000")

		username := "it-" + uuid.New().String()[:8]
		registerResult, err := authService.Register(ctx, &dto.RegisterRequest{
			Username: username,
			Email:    username + "@example.com",
			Password: "secret-pass",
		})
		require.NoError(t, err)
		require.False(t, registerResult.HasErrors())

		// Inactive until activated
		loginResult, err := authService.Login(ctx, &dto.LoginRequest{Username: username, Password: "secret-pass"}, "127.0.0.1", "integration-test")
		require.NoError(t, err)
		require.True(t, loginResult.HasErrors())

		created, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: username})
		require.NoError(t, err)
		require.NotNil(t, created)

		activateResult, err := authService.Activate(ctx, created.ActivationGuid)
		require.NoError(t, err)
		require.False(t, activateResult.HasErrors())

		// Second visit to the same link succeeds too
		activateResult, err = authService.Activate(ctx, created.ActivationGuid)
		require.NoError(t, err)
		require.False(t, activateResult.HasErrors())

		loginResult, err = authService.Login(ctx, &dto.LoginRequest{Username: username, Password: "secret-pass"}, "127.0.0.1", "integration-test")
		require.NoError(t, err)
		require.False(t, loginResult.HasErrors())
		assert.NotEmpty(t, loginResult.Value.AccessToken)

		// Profile image upload lands on disk and on the profile
		userService := service.NewUserService(uowFactory, noopPublisher{}, t.TempDir())
		uploadResult, err := userService.UploadProfileImage(ctx, created.Id, pngFileHeader(t))
		require.NoError(t, err)
		require.False(t, uploadResult.HasErrors())

		profileResult, err := userService.GetProfile(ctx, created.Id)
		require.NoError(t, err)
		require.False(t, profileResult.HasErrors())
		assert.Equal(t, "user_"+created.Id.String()+".png", profileResult.Value.ProfileImageFilename)

		// Cleanup
		assert.NoError(t, uow.UserRepository().Delete(ctx, created.Id))
	})
}

func pngFileHeader(t *testing.T) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", `form-data; name="image"; filename="avatar.png"`)
	partHeader.Set("Content-Type", "image/png")
	part, err := w.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\nfake-image-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["image"][0]
}
