package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	Nombre       string  `json:"nombre"        validate:"required,min=2,max=120"`
	RFC          string  `json:"rfc"           validate:"omitempty,max=13"`
	Telefono     string  `json:"telefono"      validate:"omitempty,min=7,max=15"`
	Email        *string `json:"email"         validate:"omitempty,email"`
	Calle        string  `json:"calle"`
	Colonia      string  `json:"colonia"`
	Ciudad       string  `json:"ciudad"`
	Estado       string  `json:"estado"`
	CodigoPostal string  `json:"codigo_postal" validate:"omitempty,len=5"`
}

type ActualizarClienteRequest struct {
	Nombre       *string `json:"nombre"        validate:"omitempty,min=2,max=120"`
	RFC          *string `json:"rfc"           validate:"omitempty,max=13"`
	Telefono     *string `json:"telefono"      validate:"omitempty,min=7,max=15"`
	Email        *string `json:"email"         validate:"omitempty,email"`
	Calle        *string `json:"calle"`
	Colonia      *string `json:"colonia"`
	Ciudad       *string `json:"ciudad"`
	Estado       *string `json:"estado"`
	CodigoPostal *string `json:"codigo_postal" validate:"omitempty,len=5"`
}

type ClienteFilter struct {
	Nombre   string `form:"nombre"`
	Telefono string `form:"telefono"`
	// Monedero filters by estado_monedero: inactivo | pendiente | activo
	Monedero string `form:"monedero" validate:"omitempty,oneof=inactivo pendiente activo"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID             string  `json:"id"`
	Nombre         string  `json:"nombre"`
	RFC            string  `json:"rfc"`
	Telefono       string  `json:"telefono"`
	Email          *string `json:"email"`
	Calle          string  `json:"calle"`
	Colonia        string  `json:"colonia"`
	Ciudad         string  `json:"ciudad"`
	Estado         string  `json:"estado"`
	CodigoPostal   string  `json:"codigo_postal"`
	EstadoMonedero string  `json:"estado_monedero"`
	Activo         bool    `json:"activo"`
}

type ClienteListResponse struct {
	Data  []ClienteResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
