package user

import (
	"context"

	"smartparking/be/biz/dal/repo"
	"smartparking/be/biz/db/mysql"
	"smartparking/be/biz/model/domain"
	"smartparking/be/biz/model/errs"
	"smartparking/be/biz/util/encode"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type Service struct {
	users  repo.UserRepository
	hasher encode.Hasher
}

func New(users repo.UserRepository, hasher encode.Hasher) *Service {
	return &Service{users: users, hasher: hasher}
}

func NewDefault() *Service {
	return New(repo.NewUserRepositoryGorm(mysql.GetDbConn()), encode.NewDefaultHasher())
}

// errPasswordTooLong counts bytes, an accented character takes two.
var errPasswordTooLong = errs.ParamError.SetMsg("La contraseña no puede superar 72 bytes.")

type RegisterParams struct {
	Nombre    string
	Apellido  string
	Cedula    string
	Telefono  string
	Correo    string
	Password  string
	Confirmar string
}

type UpdateParams struct {
	Fields domain.Fields
	// Password is applied only when non-empty, it must equal Confirmar.
	Password  *string
	Confirmar *string
}

func (s *Service) Register(ctx context.Context, p RegisterParams) (*domain.User, errs.Error) {
	if p.Password != p.Confirmar {
		return nil, errs.PasswordMismatch
	}
	if len(p.Password) > encode.MaxPasswordBytes {
		return nil, errPasswordTooLong
	}

	hash, err := s.hasher.Hash(p.Password)
	if err != nil {
		hlog.CtxErrorf(ctx, "hash password err: %v", err)
		return nil, errs.ServerError.SetErr(err)
	}

	u, err := s.users.Create(ctx, &domain.User{
		Nombre:       p.Nombre,
		Apellido:     p.Apellido,
		Cedula:       p.Cedula,
		Telefono:     p.Telefono,
		Correo:       p.Correo,
		PasswordHash: hash,
	})
	if err != nil {
		if errs.IsDuplicatedErr(err) {
			hlog.CtxNoticef(ctx, "register duplicated: correo=%s", p.Correo)
			return nil, errs.UserDuplicated.SetErr(err)
		}
		hlog.CtxErrorf(ctx, "create user err: %v", err)
		return nil, errs.ServerError.SetErr(err)
	}
	return u, nil
}

// Login answers the same InvalidCredentials for an unknown correo and for a
// wrong password.
func (s *Service) Login(ctx context.Context, correo, password string) (*domain.User, errs.Error) {
	u, err := s.users.FindByEmail(ctx, correo)
	if err != nil {
		hlog.CtxErrorf(ctx, "find user by correo err: %v", err)
		return nil, errs.ServerError.SetErr(err)
	}
	if u == nil {
		return nil, errs.InvalidCredentials
	}

	ok, err := s.hasher.Verify(password, u.PasswordHash)
	if err != nil {
		hlog.CtxErrorf(ctx, "verify password err: user_id=%d, %v", u.ID, err)
		return nil, errs.ServerError.SetErr(err)
	}
	if !ok {
		return nil, errs.InvalidCredentials
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.User, errs.Error) {
	users, err := s.users.List(ctx)
	if err != nil {
		hlog.CtxErrorf(ctx, "list users err: %v", err)
		return nil, errs.ServerError.SetErr(err)
	}
	return users, nil
}

func (s *Service) Get(ctx context.Context, id uint64) (*domain.User, errs.Error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		hlog.CtxErrorf(ctx, "find user by id err: id=%d, %v", id, err)
		return nil, errs.ServerError.SetErr(err)
	}
	if u == nil {
		return nil, errs.UserNotFound
	}
	return u, nil
}

func (s *Service) Update(ctx context.Context, id uint64, p UpdateParams) errs.Error {
	fields := domain.Fields{}
	for f, v := range p.Fields {
		if f == domain.FieldPassword {
			continue
		}
		fields[f] = v
	}

	changePassword := p.Password != nil && *p.Password != ""
	if changePassword && (p.Confirmar == nil || *p.Password != *p.Confirmar) {
		return errs.PasswordMismatch
	}
	if changePassword && len(*p.Password) > encode.MaxPasswordBytes {
		return errPasswordTooLong
	}

	if _, bizErr := s.Get(ctx, id); bizErr != nil {
		return bizErr
	}

	if changePassword {
		hash, err := s.hasher.Hash(*p.Password)
		if err != nil {
			hlog.CtxErrorf(ctx, "hash password err: %v", err)
			return errs.ServerError.SetErr(err)
		}
		fields[domain.FieldPassword] = hash
	}

	affected, err := s.users.UpdatePartial(ctx, id, fields)
	if err != nil {
		if errs.IsDuplicatedErr(err) {
			hlog.CtxNoticef(ctx, "update duplicated: id=%d", id)
			return errs.UserDuplicated.SetErr(err)
		}
		hlog.CtxErrorf(ctx, "update user err: id=%d, %v", id, err)
		return errs.ServerError.SetErr(err)
	}
	// the row exists, so zero rows only means nothing was sent or every
	// value was already current
	if affected == 0 && len(fields) == 0 {
		return errs.UserNotChanged
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id uint64) errs.Error {
	affected, err := s.users.Delete(ctx, id)
	if err != nil {
		hlog.CtxErrorf(ctx, "delete user err: id=%d, %v", id, err)
		return errs.ServerError.SetErr(err)
	}
	if affected == 0 {
		return errs.UserNotFound.SetMsg("Usuario no encontrado para eliminar.")
	}
	return nil
}
