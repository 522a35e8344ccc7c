package bootstrap

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhavipujari/myportfolio/internal/auth/password"
	"github.com/vaibhavipujari/myportfolio/internal/testutil"
)

var testAdmin = Admin{
	Email:    "vihaa22030@admin.com",
	Password: "vihaa22030",
	Name:     "Admin User",
}

func testDeps(users *testutil.MemUsers, blob *testutil.MemBlob) Deps {
	return Deps{
		Log:     log.New(io.Discard, "", 0),
		Users:   users,
		Hasher:  password.NewDefault(),
		Storage: blob,
		Admin:   testAdmin,
	}
}

func TestRunCreatesAdminAndBucket(t *testing.T) {
	users := testutil.NewMemUsers()
	blob := testutil.NewMemBlob()

	Run(context.Background(), testDeps(users, blob))

	u, err := users.UserByEmail(context.Background(), testAdmin.Email)
	require.NoError(t, err)
	assert.Equal(t, testAdmin.Name, u.Name)

	ok, err := password.NewDefault().Verify(testAdmin.Password, string(u.PassHash))
	require.NoError(t, err)
	assert.True(t, ok)

	assert.True(t, blob.BucketReady)
}

func TestRunIsIdempotent(t *testing.T) {
	users := testutil.NewMemUsers()
	blob := testutil.NewMemBlob()
	deps := testDeps(users, blob)

	Run(context.Background(), deps)
	first, err := users.UserByEmail(context.Background(), testAdmin.Email)
	require.NoError(t, err)

	Run(context.Background(), deps)
	second, err := users.UserByEmail(context.Background(), testAdmin.Email)
	require.NoError(t, err)

	// повторный старт не трогает существующую учётку
	assert.Equal(t, 1, users.Created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.PassHash, second.PassHash)
	assert.Equal(t, 2, blob.EnsureCalls)
}

func TestRunSurvivesProviderFailures(t *testing.T) {
	users := testutil.NewMemUsers()
	users.FailLookup = true
	blob := testutil.NewMemBlob()
	blob.FailEnsure = true

	// best-effort: ошибки провайдеров логируются, Run не паникует и не падает
	Run(context.Background(), testDeps(users, blob))

	assert.Equal(t, 0, users.Created)
	assert.False(t, blob.BucketReady)
}
