package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golf-api/internal/application/middleware"
	"golf-api/internal/domain/distance"
	"golf-api/internal/domain/entity"
	"golf-api/internal/domain/model"
	"golf-api/internal/domain/usecase/auth"
	"golf-api/internal/domain/usecase/calculation"
	"golf-api/internal/domain/usecase/club"
	"golf-api/internal/domain/usecase/health"
	"golf-api/internal/domain/usecase/weather"
)

const contextPath = "/golf"

type stubAuth struct {
	auth.UseCase
	registerErr error
}

func (s stubAuth) ParseToken(token string) (*model.Principal, error) {
	switch token {
	case "user-token":
		return &model.Principal{UserID: "u1"}, nil
	case "admin-token":
		return &model.Principal{UserID: "a1", IsAdmin: true}, nil
	}
	return nil, auth.ErrInvalidToken
}

func (s stubAuth) Register(_ context.Context, dto model.RegisterRequestDTO) (*entity.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &entity.User{ID: "u1", Username: dto.Username}, nil
}

func (s stubAuth) Login(_ context.Context, dto model.LoginRequestDTO) (*model.TokenDTO, error) {
	if dto.Password != "secret" {
		return nil, auth.ErrInvalidCredentials
	}
	return &model.TokenDTO{AccessToken: "user-token", TokenType: "Bearer"}, nil
}

func (s stubAuth) Refresh(_ context.Context, dto model.RefreshRequestDTO) (*model.TokenDTO, error) {
	switch dto.RefreshToken {
	case "refresh-token":
		return &model.TokenDTO{AccessToken: "user-token", TokenType: "Bearer"}, nil
	case "":
		return nil, &distance.ValidationError{Field: "refresh_token"}
	}
	return nil, auth.ErrInvalidToken
}

func (s stubAuth) ListUsers(_ context.Context, page int, size int) (*model.Page[entity.User], error) {
	return model.NewPage([]entity.User{{ID: "u1", Username: "golfer"}}, page, size, 1), nil
}

type stubClubs struct {
	club.UseCase
	bags map[string][]distance.ClubDistance
}

func (s stubClubs) ListClubDistances(_ context.Context, userID string) ([]distance.ClubDistance, error) {
	return s.bags[userID], nil
}

func (s stubClubs) GetProfile(_ context.Context, userID string) (*model.ProfileDTO, error) {
	return &model.ProfileDTO{UserID: userID, Clubs: []entity.Club{{ID: "c1", ClubName: "7i", Distance: 150, UserID: userID}}}, nil
}

func (s stubClubs) AddClub(_ context.Context, userID string, dto model.ClubRequestDTO) (*entity.Club, error) {
	name, err := entity.ParseClubName(dto.ClubName)
	if err != nil {
		return nil, err
	}
	return &entity.Club{ID: "c1", ClubName: name, Distance: dto.Distance, UserID: userID}, nil
}

func (s stubClubs) RemoveClub(_ context.Context, _ string, clubID string) error {
	if clubID != "c1" {
		return club.ErrClubNotFound
	}
	return nil
}

type stubWeather struct {
	weather.UseCase
}

func (stubWeather) GetConditions(_ context.Context, location model.Location) (*entity.WeatherConditions, model.ConditionsSource, error) {
	if err := weather.ValidateLocation(location); err != nil {
		return nil, "", err
	}
	return &entity.WeatherConditions{Temperature: "70", WindSpeed: "5 mph", WindDirection: "N", Humidity: "50"}, model.SourceCache, nil
}

type stubHealth struct {
	response model.HealthResponse
}

func (s stubHealth) CheckHealth(context.Context) model.HealthResponse {
	return s.response
}

var _ health.UseCase = stubHealth{}

func newServer(authUseCase auth.UseCase, healthStatus model.HealthStatus) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler
	api := e.Group(contextPath)

	requireAuth := middleware.RequireAuth(authUseCase)
	clubUseCase := stubClubs{bags: map[string][]distance.ClubDistance{
		"u1": {{Name: "Driver", BaseDistance: 250}, {Name: "7i", BaseDistance: 150}},
	}}

	NewHealthController(api, stubHealth{response: model.HealthResponse{Status: healthStatus}}).InitHealthRoutes()
	NewAuthController(api, authUseCase, requireAuth, middleware.RequireAdmin()).InitAuthRoutes()
	NewProfileController(api, clubUseCase, requireAuth).InitProfileRoutes()
	NewCalculationController(api, calculation.NewCalculationUseCase(clubUseCase, stubWeather{}, nil), requireAuth).InitCalculationRoutes()
	NewWeatherController(api, stubWeather{}, requireAuth).InitWeatherRoutes()
	return e
}

func serve(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, contextPath+path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{&distance.ParseError{Input: "fast"}, http.StatusBadRequest},
		{&distance.ValidationError{Field: "humidity"}, http.StatusBadRequest},
		{&distance.NotFoundError{Resource: "golf clubs"}, http.StatusNotFound},
		{club.ErrClubNotFound, http.StatusNotFound},
		{club.ErrUserNotFound, http.StatusNotFound},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{auth.ErrInvalidToken, http.StatusUnauthorized},
		{auth.ErrUsernameTaken, http.StatusConflict},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, statusOf(tt.err))
		})
	}
}

func TestHTTPErrorHandler(t *testing.T) {
	e := newServer(stubAuth{}, model.StatusUp)

	rec := serve(e, http.MethodGet, "/unknown", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", errorMessage(t, rec))

	e.GET("/broken", func(c echo.Context) error { return errors.New("boom") })
	req := httptest.NewRequest(http.MethodGet, "/broken", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", errorMessage(t, rec))
}

func TestHealth(t *testing.T) {
	assert.Equal(t, http.StatusOK, serve(newServer(stubAuth{}, model.StatusUp), http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(newServer(stubAuth{}, model.StatusDown), http.MethodGet, "/health", "", "").Code)
}

func TestAuthRoutes(t *testing.T) {
	e := newServer(stubAuth{}, model.StatusUp)

	rec := serve(e, http.MethodPost, "/users", "", `{"username":"golfer","password":"secret"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = serve(e, http.MethodPost, "/login", "", `{"username":"golfer","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, http.MethodPost, "/login", "", `{"username":"golfer","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"user-token"`)

	rec = serve(e, http.MethodPost, "/token/refresh", "", `{"refresh_token":"refresh-token"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"user-token"`)
	assert.NotContains(t, rec.Body.String(), "refresh_token")

	rec = serve(e, http.MethodPost, "/token/refresh", "", `{"refresh_token":"user-token"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, http.MethodPost, "/token/refresh", "", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "refresh_token is required", errorMessage(t, rec))

	taken := newServer(stubAuth{registerErr: auth.ErrUsernameTaken}, model.StatusUp)
	rec = serve(taken, http.MethodPost, "/users", "", `{"username":"golfer","password":"secret"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAdminRoutes(t *testing.T) {
	e := newServer(stubAuth{}, model.StatusUp)

	assert.Equal(t, http.StatusUnauthorized, serve(e, http.MethodGet, "/admin/users", "", "").Code)
	assert.Equal(t, http.StatusForbidden, serve(e, http.MethodGet, "/admin/users", "user-token", "").Code)

	rec := serve(e, http.MethodGet, "/admin/users?page=0&size=5", "admin-token", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var page model.Page[entity.User]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 5, page.Size)
	assert.Equal(t, int64(1), page.TotalElements)
}

func TestProfileRoutes(t *testing.T) {
	e := newServer(stubAuth{}, model.StatusUp)

	assert.Equal(t, http.StatusUnauthorized, serve(e, http.MethodGet, "/profile", "", "").Code)
	rec := serve(e, http.MethodGet, "/profile", "user-token", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var profile map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	require.Contains(t, profile, "golf_clubs")
	clubs := profile["golf_clubs"].([]any)
	require.Len(t, clubs, 1)
	first := clubs[0].(map[string]any)
	assert.Equal(t, "7i", first["club_name"])
	assert.Contains(t, first, "created_at")
	assert.Contains(t, first, "updated_at")

	rec = serve(e, http.MethodPost, "/profile", "user-token", `{"club_name":"7i","distance":150}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(e, http.MethodPost, "/profile", "user-token", `{"club_name":"8 wood","distance":150}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "club_name")

	assert.Equal(t, http.StatusNoContent, serve(e, http.MethodDelete, "/profile/c1", "user-token", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(e, http.MethodDelete, "/profile/other", "user-token", "").Code)
}

func TestCalculate(t *testing.T) {
	e := newServer(stubAuth{}, model.StatusUp)

	t.Run("requires a token", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/calculations", "", `{}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("sweep for every club", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/calculations", "user-token",
			`{"temperature":70,"windSpeed":"0 mph","windDirection":"N","humidity":"50"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var response model.CalculationResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.Len(t, response.GolfClubs, 2)
		assert.Equal(t, "Driver", response.GolfClubs[0].ClubName)
		assert.Len(t, response.GolfClubs[0].AdjustedDistances, 16)
		assert.InDelta(t, 250, response.GolfClubs[0].AdjustedDistances["N"], 0.001)
		assert.Nil(t, response.GolfClubs[0].AdjustedDistance)
	})

	t.Run("no clubs is not found", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/calculations", "admin-token",
			`{"temperature":70,"windSpeed":"0 mph","windDirection":"N","humidity":"50"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "no golf clubs found for this user", errorMessage(t, rec))
	})

	t.Run("invalid wind speed", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/calculations", "user-token",
			`{"temperature":70,"windSpeed":"breezy","windDirection":"N","humidity":"50"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/calculations", "user-token", `{"temperature":{}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	for _, temperature := range []string{"NaN", "Inf", "-infinity"} {
		t.Run("non finite temperature "+temperature, func(t *testing.T) {
			rec := serve(e, http.MethodPost, "/calculations", "user-token",
				`{"temperature":"`+temperature+`","windSpeed":"0 mph","windDirection":"N","humidity":"50"}`)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, `invalid temperature "`+temperature+`"`, errorMessage(t, rec))
		})
	}
}

func TestPreview(t *testing.T) {
	e := newServer(stubAuth{}, model.StatusUp)

	rec := serve(e, http.MethodPost, "/calculations/preview", "",
		`{"distance":150,"temperature":"80","windSpeed":"10 mph","windDirection":"N","facingDirection":"S","humidity":40}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result distance.ClubResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotNil(t, result.AdjustedDistance)
	assert.InDelta(t, 136.8, *result.AdjustedDistance, 0.001)

	rec = serve(e, http.MethodPost, "/calculations/preview", "", `{"temperature":"80"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "distance is required", errorMessage(t, rec))

	rec = serve(e, http.MethodPost, "/calculations/preview", "",
		`{"distance":"NaN","temperature":"80","windSpeed":"10 mph","windDirection":"N","humidity":40}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, `invalid distance "NaN"`, errorMessage(t, rec))

	hugeWind := "1" + strings.Repeat("0", 308) + " mph"
	rec = serve(e, http.MethodPost, "/calculations/preview", "",
		`{"distance":150,"temperature":"80","windSpeed":"`+hugeWind+`","windDirection":"N","humidity":40}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "out of range")
}

func TestWeatherConditions(t *testing.T) {
	e := newServer(stubAuth{}, model.StatusUp)

	rec := serve(e, http.MethodGet, "/weather/conditions?latitude=40.7128&longitude=-74.006", "user-token", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cache", rec.Header().Get(headerConditionsSource))

	rec = serve(e, http.MethodGet, "/weather/conditions?latitude=abc&longitude=-74.006", "user-token", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(e, http.MethodGet, "/weather/conditions?latitude=95&longitude=-74.006", "user-token", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
