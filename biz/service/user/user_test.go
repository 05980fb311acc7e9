package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	"smartparking/be/biz/config"
	"smartparking/be/biz/model/domain"
	"smartparking/be/biz/model/errs"
	"smartparking/be/biz/util/encode"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	createRetUser *domain.User
	createRetErr  error
	createInput   *domain.User
	createCalls   int

	listUsers []*domain.User
	listErr   error

	findByEmailUser *domain.User
	findByEmailErr  error

	findByIDUser *domain.User
	findByIDErr  error

	updateAffected int64
	updateErr      error
	updateFields   domain.Fields
	updateCalls    int

	deleteAffected int64
	deleteErr      error
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.createCalls++
	r.createInput = u
	return r.createRetUser, r.createRetErr
}

func (r *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	return r.listUsers, r.listErr
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return r.findByEmailUser, r.findByEmailErr
}

func (r *fakeUserRepo) FindByID(_ context.Context, _ uint64) (*domain.User, error) {
	return r.findByIDUser, r.findByIDErr
}

func (r *fakeUserRepo) UpdatePartial(_ context.Context, _ uint64, fields domain.Fields) (int64, error) {
	r.updateCalls++
	r.updateFields = fields
	return r.updateAffected, r.updateErr
}

func (r *fakeUserRepo) Delete(_ context.Context, _ uint64) (int64, error) {
	return r.deleteAffected, r.deleteErr
}

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errors.New("entropy exhausted") }
func (failingHasher) Verify(string, string) (bool, error) { return false, encode.ErrInvalidHash }

func testHasher() encode.Hasher {
	return encode.NewHasher(config.PasswordConf{BcryptCost: bcrypt.MinCost})
}

func mustHash(t *testing.T, p string) string {
	h, err := testHasher().Hash(p)
	assert.NoError(t, err)
	return h
}

func strPtr(s string) *string { return &s }

func registerParams(pwd, confirm string) RegisterParams {
	return RegisterParams{
		Nombre: "A", Apellido: "B", Cedula: "1", Telefono: "555",
		Correo: "a@x.com", Password: pwd, Confirmar: confirm,
	}
}

func TestService_Register(t *testing.T) {
	t.Run("password mismatch", func(t *testing.T) {
		repo := &fakeUserRepo{}
		svc := New(repo, testHasher())
		_, bizErr := svc.Register(context.Background(), registerParams("pw1", "pw2"))
		assert.True(t, errs.ErrorEqual(errs.PasswordMismatch, bizErr))
		assert.Zero(t, repo.createCalls)
	})

	t.Run("password over 72 bytes", func(t *testing.T) {
		repo := &fakeUserRepo{}
		svc := New(repo, testHasher())
		long := strings.Repeat("ñ", 40)
		_, bizErr := svc.Register(context.Background(), registerParams(long, long))
		assert.True(t, errs.ErrorEqual(errs.ParamError, bizErr))
		assert.Equal(t, 400, bizErr.HTTPStatus())
		assert.Zero(t, repo.createCalls)

		repo.createRetUser = &domain.User{ID: 1}
		exact := strings.Repeat("ñ", 36)
		_, bizErr = svc.Register(context.Background(), registerParams(exact, exact))
		assert.Nil(t, bizErr)
		assert.Equal(t, 1, repo.createCalls)
	})

	t.Run("hash error", func(t *testing.T) {
		repo := &fakeUserRepo{}
		svc := New(repo, failingHasher{})
		_, bizErr := svc.Register(context.Background(), registerParams("pw1", "pw1"))
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
		assert.Zero(t, repo.createCalls)
	})

	t.Run("duplicated", func(t *testing.T) {
		svc := New(&fakeUserRepo{createRetErr: errors.New("UNIQUE constraint failed: usuarios.correo")}, testHasher())
		_, bizErr := svc.Register(context.Background(), registerParams("pw1", "pw1"))
		assert.True(t, errs.ErrorEqual(errs.UserDuplicated, bizErr))
	})

	t.Run("create error", func(t *testing.T) {
		svc := New(&fakeUserRepo{createRetErr: errors.New("insert error")}, testHasher())
		_, bizErr := svc.Register(context.Background(), registerParams("pw1", "pw1"))
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
		assert.Equal(t, errs.ServerError.Msg(), bizErr.Msg())
	})

	t.Run("success stores hash", func(t *testing.T) {
		repo := &fakeUserRepo{createRetUser: &domain.User{ID: 1, Correo: "a@x.com"}}
		svc := New(repo, testHasher())

		u, bizErr := svc.Register(context.Background(), registerParams("pw1", "pw1"))
		assert.Nil(t, bizErr)
		assert.Equal(t, uint64(1), u.ID)

		if assert.NotNil(t, repo.createInput) {
			assert.Equal(t, "a@x.com", repo.createInput.Correo)
			assert.NotEqual(t, "pw1", repo.createInput.PasswordHash)
			ok, err := testHasher().Verify("pw1", repo.createInput.PasswordHash)
			assert.NoError(t, err)
			assert.True(t, ok)
		}
	})
}

func TestService_Login(t *testing.T) {
	t.Run("find error", func(t *testing.T) {
		svc := New(&fakeUserRepo{findByEmailErr: errors.New("db error")}, testHasher())
		_, bizErr := svc.Login(context.Background(), "a@x.com", "pw1")
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("unknown correo and wrong password look the same", func(t *testing.T) {
		svc := New(&fakeUserRepo{}, testHasher())
		_, notExist := svc.Login(context.Background(), "none@x.com", "pw1")

		u := &domain.User{ID: 1, PasswordHash: mustHash(t, "right")}
		svc = New(&fakeUserRepo{findByEmailUser: u}, testHasher())
		_, wrong := svc.Login(context.Background(), "a@x.com", "wrong")

		assert.True(t, errs.ErrorEqual(errs.InvalidCredentials, notExist))
		assert.True(t, errs.ErrorEqual(errs.InvalidCredentials, wrong))
		assert.Equal(t, notExist.Msg(), wrong.Msg())
		assert.Equal(t, notExist.HTTPStatus(), wrong.HTTPStatus())
	})

	t.Run("malformed hash", func(t *testing.T) {
		u := &domain.User{ID: 1, PasswordHash: "plaintext"}
		svc := New(&fakeUserRepo{findByEmailUser: u}, testHasher())
		_, bizErr := svc.Login(context.Background(), "a@x.com", "plaintext")
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("success", func(t *testing.T) {
		u := &domain.User{ID: 1, Correo: "a@x.com", PasswordHash: mustHash(t, "pw1")}
		svc := New(&fakeUserRepo{findByEmailUser: u}, testHasher())
		out, bizErr := svc.Login(context.Background(), "a@x.com", "pw1")
		assert.Nil(t, bizErr)
		assert.Equal(t, u, out)
	})
}

func TestService_ListAndGet(t *testing.T) {
	t.Run("list error", func(t *testing.T) {
		svc := New(&fakeUserRepo{listErr: errors.New("db error")}, testHasher())
		_, bizErr := svc.List(context.Background())
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("list", func(t *testing.T) {
		users := []*domain.User{{ID: 1}, {ID: 2}}
		svc := New(&fakeUserRepo{listUsers: users}, testHasher())
		out, bizErr := svc.List(context.Background())
		assert.Nil(t, bizErr)
		assert.Equal(t, users, out)
	})

	t.Run("get error", func(t *testing.T) {
		svc := New(&fakeUserRepo{findByIDErr: errors.New("db error")}, testHasher())
		_, bizErr := svc.Get(context.Background(), 1)
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("get not found", func(t *testing.T) {
		svc := New(&fakeUserRepo{}, testHasher())
		_, bizErr := svc.Get(context.Background(), 1)
		assert.True(t, errs.ErrorEqual(errs.UserNotFound, bizErr))
	})
}

func TestService_Update(t *testing.T) {
	existing := &domain.User{ID: 1, Correo: "a@x.com"}

	t.Run("password mismatch before store", func(t *testing.T) {
		repo := &fakeUserRepo{findByIDErr: errors.New("must not be called")}
		svc := New(repo, testHasher())
		bizErr := svc.Update(context.Background(), 1, UpdateParams{Password: strPtr("a"), Confirmar: strPtr("b")})
		assert.True(t, errs.ErrorEqual(errs.PasswordMismatch, bizErr))

		bizErr = svc.Update(context.Background(), 1, UpdateParams{Password: strPtr("a")})
		assert.True(t, errs.ErrorEqual(errs.PasswordMismatch, bizErr))
		assert.Zero(t, repo.updateCalls)
	})

	t.Run("password over 72 bytes", func(t *testing.T) {
		repo := &fakeUserRepo{findByIDUser: existing, updateAffected: 1}
		svc := New(repo, testHasher())
		long := strings.Repeat("ñ", 40)
		bizErr := svc.Update(context.Background(), 1, UpdateParams{Password: &long, Confirmar: &long})
		assert.True(t, errs.ErrorEqual(errs.ParamError, bizErr))
		assert.Equal(t, 400, bizErr.HTTPStatus())
		assert.Zero(t, repo.updateCalls)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeUserRepo{}
		svc := New(repo, testHasher())
		bizErr := svc.Update(context.Background(), 1, UpdateParams{Fields: domain.Fields{domain.FieldNombre: "X"}})
		assert.True(t, errs.ErrorEqual(errs.UserNotFound, bizErr))
		assert.Zero(t, repo.updateCalls)
	})

	t.Run("empty update", func(t *testing.T) {
		svc := New(&fakeUserRepo{findByIDUser: existing}, testHasher())
		bizErr := svc.Update(context.Background(), 1, UpdateParams{Confirmar: strPtr("ignored")})
		assert.True(t, errs.ErrorEqual(errs.UserNotChanged, bizErr))
		assert.Equal(t, 404, bizErr.HTTPStatus())
	})

	t.Run("identical values", func(t *testing.T) {
		svc := New(&fakeUserRepo{findByIDUser: existing, updateAffected: 0}, testHasher())
		bizErr := svc.Update(context.Background(), 1, UpdateParams{Fields: domain.Fields{domain.FieldCorreo: "a@x.com"}})
		assert.Nil(t, bizErr)
	})

	t.Run("password is hashed", func(t *testing.T) {
		repo := &fakeUserRepo{findByIDUser: existing, updateAffected: 1}
		svc := New(repo, testHasher())
		bizErr := svc.Update(context.Background(), 1, UpdateParams{
			Fields:    domain.Fields{domain.FieldNombre: "Ana"},
			Password:  strPtr("nueva"),
			Confirmar: strPtr("nueva"),
		})
		assert.Nil(t, bizErr)
		assert.Equal(t, "Ana", repo.updateFields[domain.FieldNombre])
		hash := repo.updateFields[domain.FieldPassword]
		assert.NotEqual(t, "nueva", hash)
		ok, err := testHasher().Verify("nueva", hash)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("raw password field is dropped", func(t *testing.T) {
		repo := &fakeUserRepo{findByIDUser: existing, updateAffected: 1}
		svc := New(repo, testHasher())
		bizErr := svc.Update(context.Background(), 1, UpdateParams{
			Fields: domain.Fields{domain.FieldNombre: "Ana", domain.FieldPassword: "plaintext"},
		})
		assert.Nil(t, bizErr)
		_, ok := repo.updateFields[domain.FieldPassword]
		assert.False(t, ok)
	})

	t.Run("duplicated", func(t *testing.T) {
		svc := New(&fakeUserRepo{findByIDUser: existing, updateErr: errors.New("UNIQUE constraint failed: usuarios.correo")}, testHasher())
		bizErr := svc.Update(context.Background(), 1, UpdateParams{Fields: domain.Fields{domain.FieldCorreo: "b@x.com"}})
		assert.True(t, errs.ErrorEqual(errs.UserDuplicated, bizErr))
		assert.Equal(t, 409, bizErr.HTTPStatus())
	})

	t.Run("store error", func(t *testing.T) {
		svc := New(&fakeUserRepo{findByIDUser: existing, updateErr: errors.New("db error")}, testHasher())
		bizErr := svc.Update(context.Background(), 1, UpdateParams{Fields: domain.Fields{domain.FieldCorreo: "b@x.com"}})
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		svc := New(&fakeUserRepo{deleteErr: errors.New("db error")}, testHasher())
		assert.True(t, errs.ErrorEqual(errs.ServerError, svc.Delete(context.Background(), 1)))
	})

	t.Run("not found", func(t *testing.T) {
		svc := New(&fakeUserRepo{deleteAffected: 0}, testHasher())
		assert.True(t, errs.ErrorEqual(errs.UserNotFound, svc.Delete(context.Background(), 1)))
	})

	t.Run("success", func(t *testing.T) {
		svc := New(&fakeUserRepo{deleteAffected: 1}, testHasher())
		assert.Nil(t, svc.Delete(context.Background(), 1))
	})
}
