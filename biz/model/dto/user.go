package dto

type RegisterReq struct {
	Nombre    string `json:"nombre" validate:"required,max=100"`
	Apellido  string `json:"apellido" validate:"required,max=100"`
	Cedula    string `json:"cedula" validate:"required,max=20"`
	Telefono  string `json:"telefono" validate:"max=20"`
	Correo    string `json:"correo" validate:"required,email,max=100"`
	Password  string `json:"contraseña" validate:"required,maxbytes=72"`
	Confirmar string `json:"confirmar" validate:"maxbytes=72"`
}

type RegisterResp struct {
	Mensaje string `json:"mensaje"`
	ID      uint64 `json:"id"`
}

type LoginReq struct {
	Correo   string `json:"correo" validate:"max=100"`
	Password string `json:"contraseña" validate:"max=256"`
}

type LoginUser struct {
	ID     uint64 `json:"id"`
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
}

type LoginResp struct {
	Mensaje   string    `json:"mensaje"`
	Usuario   LoginUser `json:"usuario"`
	Token     string    `json:"token"`
	ExpiresAt int64     `json:"expires_at"`
}

// UserResp is a user as returned to clients, it has no password field.
type UserResp struct {
	ID       uint64 `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Cedula   string `json:"cedula"`
	Telefono string `json:"telefono"`
	Correo   string `json:"correo"`
}

// UpdateReq carries a partial update, nil fields are left untouched.
// Keys outside this struct are dropped by binding.
type UpdateReq struct {
	Nombre    *string `json:"nombre" validate:"omitempty,max=100"`
	Apellido  *string `json:"apellido" validate:"omitempty,max=100"`
	Cedula    *string `json:"cedula" validate:"omitempty,max=20"`
	Telefono  *string `json:"telefono" validate:"omitempty,max=20"`
	Correo    *string `json:"correo" validate:"omitempty,email,max=100"`
	Password  *string `json:"contraseña" validate:"omitempty,maxbytes=72"`
	Confirmar *string `json:"confirmar" validate:"omitempty,maxbytes=72"`
}
