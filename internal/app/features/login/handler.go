// Package login is the single-account admin sign-in. Credentials come from
// configuration (a login ID and a bcrypt hash); there is no user database
// on this side of the listing backend.
package login

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	uierrors "github.com/dwellhub/dwellhub/internal/app/features/errors"
	"github.com/dwellhub/dwellhub/internal/app/system/auth"
	"github.com/dwellhub/dwellhub/internal/app/system/ratelimit"
	"github.com/dwellhub/dwellhub/internal/app/system/viewdata"
)

// loginAttemptLimit caps password guesses per client IP per window.
const loginAttemptLimit = 10

type Handler struct {
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
	Limiter    *ratelimit.Limiter

	// Configured admin credentials.
	AdminLoginID      string
	AdminPasswordHash string
	AdminName         string
}

func NewHandler(sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, adminLoginID, adminPasswordHash, adminName string, logger *zap.Logger) *Handler {
	if adminName == "" {
		adminName = "Administrator"
	}
	return &Handler{
		SessionMgr:        sessionMgr,
		ErrLog:            errLog,
		Log:               logger,
		Limiter:           ratelimit.New(loginAttemptLimit, time.Minute),
		AdminLoginID:      adminLoginID,
		AdminPasswordHash: adminPasswordHash,
		AdminName:         adminName,
	}
}

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	LoginID   string
	ReturnURL string
}

// ServeLogin handles GET /admin/login.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/"),
		ReturnURL: query.Get(r, "return"),
	})
}

// HandleLoginPost handles POST /admin/login.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/login")
		return
	}

	loginID := strings.TrimSpace(r.FormValue("login_id"))
	password := r.FormValue("password")
	ret := strings.TrimSpace(r.FormValue("return"))

	if loginID == "" || password == "" {
		h.renderFormWithError(w, r, "Please enter your login ID and password.", loginID, ret)
		return
	}

	ip := ratelimit.ClientIP(r)
	if !h.Limiter.Allow(ip) {
		h.Log.Warn("login rate limited", zap.String("ip", ip))
		h.renderFormWithError(w, r, "Too many login attempts. Please wait a minute and try again.", loginID, ret)
		return
	}

	if !h.credentialsMatch(loginID, password) {
		h.Log.Warn("login failed", zap.String("login_id", loginID))
		h.renderFormWithError(w, r, "Incorrect login ID or password.", loginID, ret)
		return
	}

	u := &auth.SessionUser{
		ID:      "admin",
		Name:    h.AdminName,
		LoginID: h.AdminLoginID,
		Role:    "admin",
	}
	if err := h.SessionMgr.SignIn(w, r, u); err != nil {
		h.Log.Error("save session failed", zap.Error(err), zap.String("login_id", loginID))
		h.renderFormWithError(w, r, "Unable to create session. Please try again.", loginID, ret)
		return
	}

	h.Limiter.Reset(ip)
	h.Log.Info("admin signed in", zap.String("login_id", loginID))
	http.Redirect(w, r, urlutil.SafeReturn(ret, "", "/admin/properties"), http.StatusSeeOther)
}

func (h *Handler) credentialsMatch(loginID, password string) bool {
	if h.AdminLoginID == "" || h.AdminPasswordHash == "" {
		return false
	}
	if !strings.EqualFold(loginID, h.AdminLoginID) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(h.AdminPasswordHash), []byte(password)) == nil
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, loginID, ret string) {
	if ret == "" {
		ret = query.Get(r, "return")
	}
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/"),
		Error:     msg,
		LoginID:   loginID,
		ReturnURL: ret,
	})
}
