package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/pokerbankroll/internal/domain"
	"go.uber.org/zap"
)

// Dashboard renders the per-period overview
func (h *Handler) Dashboard(c *gin.Context) {
	d, err := h.dashboard.Dashboard(c.Request.Context(), h.actor(c), c.Query("period"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.render(c, http.StatusOK, "dashboard.html", gin.H{
		"Title":     "Dashboard",
		"Dashboard": d,
		"Periods":   h.periodOptions(),
	})
}

// AddTournamentPage renders an empty tournament form
func (h *Handler) AddTournamentPage(c *gin.Context) {
	h.renderTournamentForm(c, http.StatusOK, "Add Tournament", "/add_tournament/", newForm(c))
}

// AddTournament stores a submitted tournament result
func (h *Handler) AddTournament(c *gin.Context) {
	f, in := tournamentForm(c, h.clock())
	if !f.valid() {
		h.renderTournamentForm(c, http.StatusOK, "Add Tournament", "/add_tournament/", f)
		return
	}

	t, err := h.tournaments.Create(c.Request.Context(), h.actor(c), in)
	if err != nil {
		if f.absorb(err) {
			h.renderTournamentForm(c, http.StatusOK, "Add Tournament", "/add_tournament/", f)
			return
		}
		h.renderError(c, err)
		return
	}

	h.flash(c, "Tournament added! Net: "+t.DisplayNet())
	c.Redirect(http.StatusFound, DashboardPath)
}

// TournamentList renders the filtered tournament listing with totals
func (h *Handler) TournamentList(c *gin.Context) {
	list, err := h.tournaments.List(c.Request.Context(), h.actor(c), c.Query("period"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.render(c, http.StatusOK, "tournament_list.html", gin.H{
		"Title":   "Tournaments",
		"List":    list,
		"Periods": h.periodOptions(),
	})
}

// EditTournamentPage renders the form prefilled with a stored result
func (h *Handler) EditTournamentPage(c *gin.Context) {
	t, ok := h.ownedTournament(c)
	if !ok {
		return
	}
	h.renderTournamentForm(c, http.StatusOK, "Edit Tournament", editPath(t.ID), tournamentFormOf(t))
}

// EditTournament replaces a stored result with the submitted values
func (h *Handler) EditTournament(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	f, in := tournamentForm(c, h.clock())
	if !f.valid() {
		h.renderTournamentForm(c, http.StatusOK, "Edit Tournament", editPath(id), f)
		return
	}

	if _, err := h.tournaments.Update(c.Request.Context(), h.actor(c), id, in, false); err != nil {
		if f.absorb(err) {
			h.renderTournamentForm(c, http.StatusOK, "Edit Tournament", editPath(id), f)
			return
		}
		h.renderError(c, err)
		return
	}

	h.flash(c, "Tournament updated successfully!")
	c.Redirect(http.StatusFound, TournamentListPath)
}

// DeleteTournamentPage asks for confirmation
func (h *Handler) DeleteTournamentPage(c *gin.Context) {
	t, ok := h.ownedTournament(c)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, "delete_tournament.html", gin.H{"Title": "Delete Tournament", "Tournament": t})
}

// DeleteTournament removes a result and reverses its net amount
func (h *Handler) DeleteTournament(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if err := h.tournaments.Delete(c.Request.Context(), h.actor(c), id); err != nil {
		h.renderError(c, err)
		return
	}

	h.flash(c, "Tournament deleted successfully!")
	c.Redirect(http.StatusFound, TournamentListPath)
}

// AddAdjustmentPage renders an empty adjustment form
func (h *Handler) AddAdjustmentPage(c *gin.Context) {
	h.renderAdjustmentForm(c, newForm(c))
}

// AddAdjustment applies a submitted deposit, withdrawal or correction
func (h *Handler) AddAdjustment(c *gin.Context) {
	f, in := adjustmentForm(c)
	if !f.valid() {
		h.renderAdjustmentForm(c, f)
		return
	}

	a, err := h.adjustments.Create(c.Request.Context(), h.actor(c), in)
	if err != nil {
		if f.absorb(err) {
			h.renderAdjustmentForm(c, f)
			return
		}
		h.renderError(c, err)
		return
	}

	h.flash(c, adjustmentMessage(a))
	c.Redirect(http.StatusFound, DashboardPath)
}

// SignUpPage renders the registration form
func (h *Handler) SignUpPage(c *gin.Context) {
	h.render(c, http.StatusOK, "signup.html", gin.H{"Title": "Sign Up", "Form": newForm(c)})
}

// SignUp registers the player, starts a session and greets them
func (h *Handler) SignUp(c *gin.Context) {
	f := newForm(c, "username")
	password, confirm := c.PostForm("password1"), c.PostForm("password2")
	if password != confirm {
		f.Errors.Add("password2", "The two password fields didn't match.")
	}

	render := func() {
		h.render(c, http.StatusOK, "signup.html", gin.H{"Title": "Sign Up", "Form": f})
	}
	if !f.valid() {
		render()
		return
	}

	user, err := h.users.SignUp(c.Request.Context(), f.Value("username"), password)
	if err != nil {
		if appErr, ok := domain.IsAppError(err); ok && appErr.Code == domain.ErrCodeValidation {
			if msgs, ok := appErr.Fields["password"]; ok {
				delete(appErr.Fields, "password")
				appErr.Fields["password1"] = msgs
			}
		}
		if f.absorb(err) {
			render()
			return
		}
		h.renderError(c, err)
		return
	}

	token, _, err := h.users.Authenticate(c.Request.Context(), user.Username, password)
	if err != nil {
		h.logger.WithContext(c.Request.Context()).Error("Login after signup failed",
			zap.Int64("user_id", user.ID), zap.Error(err))
		c.Redirect(http.StatusFound, LoginPath)
		return
	}

	h.startSession(c, token)
	h.flash(c, fmt.Sprintf("Welcome %s!", user.Username))
	c.Redirect(http.StatusFound, DashboardPath)
}

// LoginPage renders the login form
func (h *Handler) LoginPage(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{"Title": "Log In", "Form": newForm(c), "Next": c.Query("next")})
}

// Login authenticates the credentials and stores the token in the session cookie
func (h *Handler) Login(c *gin.Context) {
	f := newForm(c, "username")
	next := c.PostForm("next")

	token, _, err := h.users.Authenticate(c.Request.Context(), f.Value("username"), c.PostForm("password"))
	if err != nil {
		if appErr, ok := domain.IsAppError(err); ok && appErr.HTTPStatus == http.StatusUnauthorized {
			f.NonField = append(f.NonField, badCredentialsMessage)
			h.render(c, http.StatusOK, "login.html", gin.H{"Title": "Log In", "Form": f, "Next": next})
			return
		}
		h.renderError(c, err)
		return
	}

	h.startSession(c, token)
	c.Redirect(http.StatusFound, safeNext(next))
}

// Logout ends the session
func (h *Handler) Logout(c *gin.Context) {
	h.clearSession(c)
	c.Redirect(http.StatusFound, LoginPath)
}

func (h *Handler) ownedTournament(c *gin.Context) (*domain.Tournament, bool) {
	id, err := pathID(c)
	if err != nil {
		h.renderError(c, err)
		return nil, false
	}
	t, err := h.tournaments.Get(c.Request.Context(), h.actor(c), id)
	if err != nil {
		h.renderError(c, err)
		return nil, false
	}
	return t, true
}

func (h *Handler) renderTournamentForm(c *gin.Context, status int, title, action string, f *form) {
	h.render(c, status, "tournament_form.html", gin.H{"Title": title, "Action": action, "Form": f})
}

func (h *Handler) renderAdjustmentForm(c *gin.Context, f *form) {
	h.render(c, http.StatusOK, "adjustment_form.html", gin.H{
		"Title": "Add Adjustment",
		"Form":  f,
		"Types": domain.TransactionTypes,
	})
}

func editPath(id int64) string {
	return fmt.Sprintf("/tournaments/%d/edit/", id)
}

func adjustmentMessage(a *domain.Adjustment) string {
	amount := a.Amount.StringFixed(domain.MoneyPlaces)
	switch a.TransactionType {
	case domain.TransactionTypeDeposit:
		return fmt.Sprintf("Deposited %s$", amount)
	case domain.TransactionTypeWithdrawal:
		return fmt.Sprintf("Withdrew %s$", amount)
	default:
		return fmt.Sprintf("Bankroll corrected to %s$", amount)
	}
}
