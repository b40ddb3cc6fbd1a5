package service

import (
	"context"
	"testing"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/config"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/dto"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"
	"github.com/InnovaCleean/innovacleannew-sub000/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username && u.Activo {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.Activo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) ListAll(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Activo = false
	}
	return nil
}

func (r *stubUsuarioRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Activo = true
	}
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func buildAuthSvc() (AuthService, *stubUsuarioRepo) {
	repo := newStubUsuarioRepo()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 8, JWTRefreshHours: 168}
	return NewAuthService(repo, cfg), repo
}

func crearUsuarioDemo(t *testing.T, svc AuthService, rol string) dto.UsuarioResponse {
	t.Helper()
	resp, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "ana@innovaclean.mx",
		Nombre:   "Ana López",
		Password: "super-secreta",
		Rol:      rol,
	})
	require.NoError(t, err)
	return *resp
}

func TestLogin(t *testing.T) {
	svc, _ := buildAuthSvc()
	crearUsuarioDemo(t, svc, "vendedor")

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "ana@innovaclean.mx",
		Password: "super-secreta",
	})
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Ana López", resp.User.Nombre)

	// The token carries the display name so checkouts can stamp the seller.
	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "Ana López", claims["nombre"])
	assert.Equal(t, "vendedor", claims["rol"])
}

func TestLoginPasswordIncorrecto(t *testing.T) {
	svc, _ := buildAuthSvc()
	crearUsuarioDemo(t, svc, "vendedor")

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "ana@innovaclean.mx",
		Password: "otra-cosa",
	})
	assert.Error(t, err)
}

func TestLoginUsuarioDesactivado(t *testing.T) {
	svc, _ := buildAuthSvc()
	user := crearUsuarioDemo(t, svc, "vendedor")

	require.NoError(t, svc.DesactivarUsuario(context.Background(), uuid.MustParse(user.ID)))

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "ana@innovaclean.mx",
		Password: "super-secreta",
	})
	assert.Error(t, err)
}

func TestRefresh(t *testing.T) {
	svc, _ := buildAuthSvc()
	crearUsuarioDemo(t, svc, "administrador")

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "ana@innovaclean.mx",
		Password: "super-secreta",
	})
	require.NoError(t, err)

	renovado, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renovado.AccessToken)
	assert.Equal(t, login.User.ID, renovado.User.ID)
}

func TestRefreshTokenBasura(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.Refresh(context.Background(), "no-es-un-jwt")
	assert.Error(t, err)
}

func TestRefreshUsuarioDesactivado(t *testing.T) {
	svc, _ := buildAuthSvc()
	user := crearUsuarioDemo(t, svc, "vendedor")

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "ana@innovaclean.mx",
		Password: "super-secreta",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DesactivarUsuario(context.Background(), uuid.MustParse(user.ID)))

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.Error(t, err)
}

func TestListarUsuariosFiltraInactivos(t *testing.T) {
	svc, repo := buildAuthSvc()
	user := crearUsuarioDemo(t, svc, "vendedor")
	require.NoError(t, repo.Create(context.Background(), &model.Usuario{
		Username: "baja@innovaclean.mx", Nombre: "Usuario Baja", PasswordHash: "x", Rol: "vendedor", Activo: false,
	}))

	activos, err := svc.ListarUsuarios(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, activos, 1)
	assert.Equal(t, user.ID, activos[0].ID)

	todos, err := svc.ListarUsuarios(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}
