package handler

import (
	"context"
	"strconv"

	"smartparking/be/biz/middleware/jwt"
	"smartparking/be/biz/middleware/session"
	"smartparking/be/biz/model/convert"
	"smartparking/be/biz/model/dto"
	"smartparking/be/biz/model/errs"
	"smartparking/be/biz/service/user"
	"smartparking/be/biz/util/metrics"
	"smartparking/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/sessions"
)

// Register 用户注册接口
//
//	@Tags			usuarios
//	@Summary		Register a user
//	@Description	contraseña must equal confirmar, the password is stored hashed
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.RegisterReq	true	"register request body"
//	@Success		200	{object}	dto.RegisterResp
//	@Failure		400	{object}	dto.ErrorResp
//	@Failure		409	{object}	dto.ErrorResp
//	@Failure		500	{object}	dto.ErrorResp
//	@Router			/api/usuarios/registro [POST]
func Register(ctx context.Context, c *app.RequestContext) {
	var req dto.RegisterReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()))
		return
	}

	u, bizErr := user.NewDefault().Register(ctx, user.RegisterParams{
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Cedula:    req.Cedula,
		Telefono:  req.Telefono,
		Correo:    req.Correo,
		Password:  req.Password,
		Confirmar: req.Confirmar,
	})
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.RegisterResp{
		Mensaje: "Usuario registrado correctamente",
		ID:      u.ID,
	})
}

// Login 用户登录接口
//
//	@Tags			usuarios
//	@Summary		Log in with correo and contraseña
//	@Description	unknown correo and wrong contraseña return the same 401 body
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.LoginReq	true	"login request body"
//	@Success		200	{object}	dto.LoginResp
//	@Header			200	{string}	set-cookie	"session cookie"
//	@Failure		401	{object}	dto.ErrorResp
//	@Failure		403	{object}	dto.ErrorResp
//	@Router			/api/usuarios/login [POST]
func Login(ctx context.Context, c *app.RequestContext) {
	var req dto.LoginReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()))
		return
	}

	u, bizErr := user.NewDefault().Login(ctx, req.Correo, req.Password)
	if bizErr != nil {
		if errs.ErrorEqual(bizErr, errs.InvalidCredentials) {
			metrics.ObserveLogin(metrics.LoginFailed)
		}
		resp.FailResp(c, bizErr)
		return
	}

	sessID, err := session.Login(c, u.ID)
	if err != nil {
		hlog.CtxErrorf(ctx, "session save err: %v", err)
		resp.FailResp(c, errs.ServerError.SetErr(err))
		return
	}

	token, expAt, err := jwt.GenerateToken(ctx, jwt.Payload{UserID: u.ID, Correo: u.Correo}, sessID)
	if err != nil {
		resp.FailResp(c, errs.ServerError.SetErr(err))
		return
	}

	metrics.ObserveLogin(metrics.LoginSuccess)
	resp.SuccessResp(c, dto.LoginResp{
		Mensaje: "Inicio de sesión exitoso",
		Usuario: dto.LoginUser{
			ID:     u.ID,
			Nombre: u.Nombre,
			Correo: u.Correo,
		},
		Token:     token,
		ExpiresAt: expAt,
	})
}

// ListUsers 用户列表接口
//
//	@Tags			usuarios
//	@Summary		List every user
//	@Produce		json
//	@Success		200	{array}		dto.UserResp
//	@Failure		500	{object}	dto.ErrorResp
//	@Router			/api/usuarios [GET]
func ListUsers(ctx context.Context, c *app.RequestContext) {
	users, bizErr := user.NewDefault().List(ctx)
	if bizErr != nil {
		resp.FailResp(c, bizErr.SetMsg("Error en el servidor al obtener usuarios."))
		return
	}

	resp.SuccessResp(c, convert.UsersDomainToResp(users))
}

// GetUser 用户详情接口
//
//	@Tags			usuarios
//	@Summary		Get a user by id
//	@Produce		json
//	@Param			id	path		int	true	"user id"
//	@Success		200	{object}	dto.UserResp
//	@Failure		404	{object}	dto.ErrorResp
//	@Router			/api/usuarios/{id} [GET]
func GetUser(ctx context.Context, c *app.RequestContext) {
	id, ok := userID(ctx, c)
	if !ok {
		resp.FailResp(c, errs.UserNotFound)
		return
	}

	u, bizErr := user.NewDefault().Get(ctx, id)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, convert.UserDomainToResp(u))
}

// UpdateUser 用户更新接口
//
//	@Tags			usuarios
//	@Summary		Partially update a user
//	@Description	only the fields present are written, a new contraseña needs confirmar
//	@Accept			json
//	@Produce		json
//	@Param			id	path		int				true	"user id"
//	@Param			req	body		dto.UpdateReq	true	"fields to change"
//	@Success		200	{object}	dto.MessageResp
//	@Failure		400	{object}	dto.ErrorResp
//	@Failure		404	{object}	dto.ErrorResp
//	@Failure		409	{object}	dto.ErrorResp
//	@Router			/api/usuarios/{id} [PUT]
func UpdateUser(ctx context.Context, c *app.RequestContext) {
	id, ok := userID(ctx, c)
	if !ok {
		resp.FailResp(c, errs.UserNotFound)
		return
	}

	var req dto.UpdateReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()))
		return
	}

	if bizErr := user.NewDefault().Update(ctx, id, user.UpdateParams{
		Fields:    convert.UpdateReqToFields(&req),
		Password:  req.Password,
		Confirmar: req.Confirmar,
	}); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.MessageResp(c, "Usuario actualizado correctamente")
}

// DeleteUser 用户删除接口
//
//	@Tags			usuarios
//	@Summary		Delete a user
//	@Produce		json
//	@Param			id	path		int	true	"user id"
//	@Success		200	{object}	dto.MessageResp
//	@Failure		404	{object}	dto.ErrorResp
//	@Router			/api/usuarios/{id} [DELETE]
func DeleteUser(ctx context.Context, c *app.RequestContext) {
	id, ok := userID(ctx, c)
	if !ok {
		resp.FailResp(c, errs.UserNotFound.SetMsg("Usuario no encontrado para eliminar."))
		return
	}

	if bizErr := user.NewDefault().Delete(ctx, id); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.MessageResp(c, "Usuario eliminado correctamente")
}

// Perfil 当前用户信息接口
//
//	@Tags			usuarios
//	@Summary		Current user
//	@Produce		json
//	@Param			Authorization	header		string	true	"jwt"
//	@Success		200				{object}	dto.UserResp
//	@Failure		401				{object}	dto.ErrorResp
//	@Router			/api/usuarios/perfil [GET]
func Perfil(ctx context.Context, c *app.RequestContext) {
	payload := jwt.GetPayload(ctx)
	if payload.UserID == 0 {
		resp.FailResp(c, errs.Unauthorized)
		return
	}
	// the session must belong to the same user the token was issued to
	if sessUserID := session.UserID(c); sessUserID != payload.UserID {
		hlog.CtxNoticef(ctx, "perfil session user mismatch: token=%d, session=%d", payload.UserID, sessUserID)
		resp.FailResp(c, errs.Unauthorized)
		return
	}

	u, bizErr := user.NewDefault().Get(ctx, payload.UserID)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, convert.UserDomainToResp(u))
}

// Logout 用户登出接口
//
//	@Tags			usuarios
//	@Summary		Revoke the token and end the session
//	@Produce		json
//	@Param			Authorization	header		string	true	"jwt"
//	@Success		200				{object}	dto.MessageResp
//	@Header			200				{string}	set-cookie	"expired session cookie"
//	@Router			/api/usuarios/logout [POST]
func Logout(ctx context.Context, c *app.RequestContext) {
	if err := jwt.RemoveToken(ctx, sessions.Default(c).ID()); err != nil {
		hlog.CtxErrorf(ctx, "RemoveToken err: %v", err)
	}
	if err := session.Remove(c); err != nil {
		hlog.CtxErrorf(ctx, "RemoveSession err: %v", err)
	}
	hlog.CtxInfof(ctx, "logout success")
	resp.MessageResp(c, "Sesión cerrada correctamente")
}

// userID parses the :id path param. Non numeric ids cannot match any row.
func userID(ctx context.Context, c *app.RequestContext) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		hlog.CtxNoticef(ctx, "invalid user id %q: %v", c.Param("id"), err)
		return 0, false
	}
	return id, true
}
