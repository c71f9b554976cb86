package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-talent-map/internal/migrations"
	"github.com/sbilibin2017/gw-talent-map/internal/models"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, migrations.Apply(context.Background(), db))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

// seedAccount inserts an account with a profile and pins its creation time
func seedAccount(t *testing.T, db *sqlx.DB, username string, createdAt time.Time, profile models.ProfileDB) (uuid.UUID, int64) {
	t.Helper()
	ctx := context.Background()

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, NewUserWriteRepository(db).Save(ctx, user))
	_, err := db.Exec(`UPDATE users SET created_at = $1 WHERE user_id = $2`, createdAt, user.UserID)
	require.NoError(t, err)

	profile.UserID = user.UserID
	if profile.EducationLevel == "" {
		profile.EducationLevel = models.DefaultEducationLevel
	}
	require.NoError(t, NewProfileWriteRepository(db).Save(ctx, &profile))

	return user.UserID, profile.ProfileID
}
