package bootstrap

import (
	"context"
	"errors"
	"log"

	"github.com/vaibhavipujari/myportfolio/internal/domain"
)

// Bootstrap выполняется один раз на старте процесса, до приёма запросов:
// гарантирует существование дефолтной учётки админа и приватного бакета
// для резюме. Оба шага идемпотентны и best-effort: ошибка провайдера
// логируется, сервис стартует в деградированном режиме, а не падает.

type Admin struct {
	Email    string
	Password string
	Name     string
}

type Deps struct {
	Log     *log.Logger
	Users   domain.UsersRepo
	Hasher  domain.PasswordHasher
	Storage domain.BlobStorage
	Admin   Admin
}

func Run(ctx context.Context, d Deps) {
	d.ensureDefaultAdmin(ctx)
	d.ensureResumeBucket(ctx)
}

func (d Deps) ensureDefaultAdmin(ctx context.Context) {
	d.Log.Println("checking for default admin account...")

	_, err := d.Users.UserByEmail(ctx, d.Admin.Email)
	if err == nil {
		d.Log.Println("default admin account already exists")
		return
	}
	if !errors.Is(err, domain.ErrNotFound) {
		d.Log.Printf("list admin failed: %v", err)
		return
	}

	hash, err := d.Hasher.Hash(d.Admin.Password)
	if err != nil {
		d.Log.Printf("hash admin password failed: %v", err)
		return
	}

	u, err := d.Users.CreateUser(ctx, d.Admin.Email, d.Admin.Name, []byte(hash))
	if err != nil {
		// уникальный индекс по email: конкурентный старт уже создал учётку
		if errors.Is(err, domain.ErrBadParams) {
			d.Log.Println("default admin created concurrently")
			return
		}
		d.Log.Printf("create default admin failed: %v", err)
		return
	}

	d.Log.Printf("default admin account created: email=%s", u.Email)
	d.Log.Println("change the default credentials after first login")
}

func (d Deps) ensureResumeBucket(ctx context.Context) {
	if err := d.Storage.EnsureBucket(ctx); err != nil {
		d.Log.Printf("ensure resume bucket failed: %v", err)
		return
	}
	d.Log.Println("resume bucket is ready")
}
