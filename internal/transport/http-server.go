package transport

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/auth"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/config"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/models"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/service"
)

const userContextKey = "user"

var Module = fx.Options(
	fx.Provide(NewHTTPServer),
	fx.Invoke(func(*HTTPServer) {}),
)

type (
	CustomValidator struct {
		validator *validator.Validate
	}

	HTTPServer struct {
		echo      *echo.Echo
		auth      *service.Auth
		users     *service.User
		bookmarks *service.Bookmark
		signer    *auth.Signer
		logger    *zap.SugaredLogger
	}
)

func NewHTTPServer(
	lc fx.Lifecycle,
	cfg *config.Config,
	authSvc *service.Auth,
	users *service.User,
	bookmarks *service.Bookmark,
	signer *auth.Signer,
	logger *zap.SugaredLogger,
) *HTTPServer {
	instance := newHTTPServer(authSvc, users, bookmarks, signer, logger)
	e := instance.echo

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Infow("Starting HTTP server.", "addr", cfg.HTTPAddr())
				if err := e.Start(cfg.HTTPAddr()); err != nil && err != http.ErrServerClosed {
					logger.Fatalw("shutting down the server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server.")
			return e.Shutdown(ctx)
		},
	})

	return instance
}

func newHTTPServer(
	authSvc *service.Auth,
	users *service.User,
	bookmarks *service.Bookmark,
	signer *auth.Signer,
	logger *zap.SugaredLogger,
) *HTTPServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	instance := HTTPServer{
		echo:      e,
		auth:      authSvc,
		users:     users,
		bookmarks: bookmarks,
		signer:    signer,
		logger:    logger,
	}

	authG := e.Group("/auth")
	authG.POST("/signup", instance.Signup)
	authG.POST("/signin", instance.Signin)

	userG := e.Group("/users", instance.AuthMiddleware)
	userG.GET("/me", instance.UserMe)
	userG.PATCH("", instance.UserEdit)

	bookmarkG := e.Group("/bookmarks", instance.AuthMiddleware)
	bookmarkG.GET("", instance.BookmarkList)
	bookmarkG.POST("", instance.BookmarkCreate)
	bookmarkG.GET("/:id", instance.BookmarkGet)
	bookmarkG.PATCH("/:id", instance.BookmarkUpdate)
	bookmarkG.DELETE("/:id", instance.BookmarkDelete)

	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(instance.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(instance.BodyLogger())

	e.Validator = NewCustomValidator()
	e.HTTPErrorHandler = instance.ErrorHandler

	echo.NotFoundHandler = func(c echo.Context) error {
		return c.NoContent(http.StatusNotFound)
	}

	return &instance
}

func (s *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *HTTPServer) Signup(c echo.Context) error {
	req := models.AuthReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := s.auth.Signup(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, models.TokenResp{AccessToken: token})
}

func (s *HTTPServer) Signin(c echo.Context) error {
	req := models.AuthReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := s.auth.Signin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.TokenResp{AccessToken: token})
}

func (s *HTTPServer) UserMe(c echo.Context) error {
	user, err := GetUserFromContext(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewUserResp(user))
}

func (s *HTTPServer) UserEdit(c echo.Context) error {
	user, err := GetUserFromContext(c)
	if err != nil {
		return err
	}

	req := models.UserEditReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := s.users.Edit(c.Request().Context(), user.ID, service.UserPatch{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewUserResp(updated))
}

func (s *HTTPServer) BookmarkList(c echo.Context) error {
	user, err := GetUserFromContext(c)
	if err != nil {
		return err
	}

	req := models.BookmarkReqList{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	bookmarks, err := s.bookmarks.List(c.Request().Context(), user.ID, req.Query)
	if err != nil {
		return err
	}

	resp := make([]models.BookmarkResp, len(bookmarks))
	for i := range bookmarks {
		resp[i] = models.NewBookmarkResp(&bookmarks[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) BookmarkCreate(c echo.Context) error {
	user, err := GetUserFromContext(c)
	if err != nil {
		return err
	}

	req := models.BookmarkCreateReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	model, err := s.bookmarks.Create(c.Request().Context(), user.ID, req.Title, req.Link, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, models.NewBookmarkResp(model))
}

func (s *HTTPServer) BookmarkGet(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	user, err := GetUserFromContext(c)
	if err != nil {
		return err
	}

	model, err := s.bookmarks.Get(c.Request().Context(), user.ID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewBookmarkResp(model))
}

func (s *HTTPServer) BookmarkUpdate(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	user, err := GetUserFromContext(c)
	if err != nil {
		return err
	}

	req := models.BookmarkEditReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	model, err := s.bookmarks.Edit(c.Request().Context(), user.ID, id, service.BookmarkPatch{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewBookmarkResp(model))
}

func (s *HTTPServer) BookmarkDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	user, err := GetUserFromContext(c)
	if err != nil {
		return err
	}

	if err := s.bookmarks.Delete(c.Request().Context(), user.ID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AuthMiddleware resolves the bearer token to a user and stores it in the context.
func (s *HTTPServer) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.NoContent(http.StatusUnauthorized)
		}

		claims, err := s.signer.Parse(token)
		if err != nil {
			s.logger.Debugw("reject token", "error", err)
			return c.NoContent(http.StatusUnauthorized)
		}
		id, err := claims.UserID()
		if err != nil {
			s.logger.Debugw("reject token", "error", err)
			return c.NoContent(http.StatusUnauthorized)
		}

		user, err := s.users.Get(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				return c.NoContent(http.StatusUnauthorized)
			}
			return errors.Wrap(err, "find user in db")
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

////////

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func BindAndValidate(c echo.Context, v interface{}) error {
	var err error
	if err = c.Bind(v); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return echo.NewHTTPError(http.StatusBadRequest, he.Message)
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err = c.Validate(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
	}
	return nil
}

// validationMessage turns validator errors into "field reason" pairs.
func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "email":
			msg = "must be a valid email address"
		case "url":
			msg = "must be a valid URL"
		case "min":
			msg = fmt.Sprintf("must be at least %s characters", fe.Param())
		case "max":
			msg = fmt.Sprintf("must not exceed %s characters", fe.Param())
		default:
			msg = "is invalid"
		}
		msgs = append(msgs, fe.Field()+" "+msg)
	}
	return strings.Join(msgs, "; ")
}

func GetUserFromContext(c echo.Context) (*db.User, error) {
	user, ok := c.Get(userContextKey).(*db.User)
	if !ok || user == nil {
		return nil, errors.New("no user found in context")
	}
	return user, nil
}

func GetParam(c echo.Context, name string) (string, error) {
	value := c.Param(name)
	if value == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid path param '%s'", name))
	}
	return value, nil
}

func GetAndParseParam(c echo.Context, name string) (uint64, error) {
	v, e := GetParam(c, name)
	if e != nil {
		return 0, e
	}
	vv, e := strconv.ParseUint(v, 10, 64)
	if e != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid path param '%s'", name))
	}
	return vv, nil
}
