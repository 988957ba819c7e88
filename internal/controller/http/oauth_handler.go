package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"kamstim/internal/usecase"
	"kamstim/pkg/config"
	"kamstim/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const oauthStateCookie = "oauth_state"

type OAuthHandler struct {
	authUseCase usecase.AuthUseCase
	oauthConfig *oauth2.Config
	logger      *logger.Logger
}

func NewOAuthHandler(authUseCase usecase.AuthUseCase, cfg *config.Config, logger *logger.Logger) *OAuthHandler {
	return &OAuthHandler{
		authUseCase: authUseCase,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GitHubClientID,
			ClientSecret: cfg.GitHubClientSecret,
			RedirectURL:  cfg.GitHubRedirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     github.Endpoint,
		},
		logger: logger,
	}
}

type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// GitHubLogin godoc
// @Summary      Start the GitHub OAuth flow
// @Tags         auth
// @Success      307
// @Router       /auth/github [get]
func (h *OAuthHandler) GitHubLogin(c *gin.Context) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start OAuth flow"})
		return
	}
	state := hex.EncodeToString(buf)

	c.SetCookie(oauthStateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthConfig.AuthCodeURL(state))
}

// GitHubCallback godoc
// @Summary      Complete the GitHub OAuth flow
// @Tags         auth
// @Produce      json
// @Param        code  query string true "Authorization code"
// @Param        state query string true "CSRF state"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/github/callback [get]
func (h *OAuthHandler) GitHubCallback(c *gin.Context) {
	state := c.Query("state")
	cookieState, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != cookieState {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OAuth state"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
		return
	}

	ctx := c.Request.Context()
	token, err := h.oauthConfig.Exchange(ctx, code)
	if err != nil {
		h.logger.Error("Failed to exchange OAuth code: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete OAuth flow"})
		return
	}

	ghUser, err := h.fetchGitHubUser(ctx, token)
	if err != nil {
		h.logger.Error("Failed to fetch GitHub profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user profile"})
		return
	}

	name := ghUser.Name
	if name == "" {
		name = ghUser.Login
	}

	user, jwtToken, err := h.authUseCase.OAuthLogin(
		"github",
		strconv.FormatInt(ghUser.ID, 10),
		ghUser.Email,
		name,
		ghUser.AvatarURL,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: jwtToken, User: user})
}

func (h *OAuthHandler) fetchGitHubUser(ctx context.Context, token *oauth2.Token) (*githubUser, error) {
	client := h.oauthConfig.Client(ctx, token)

	resp, err := client.Get("https://api.github.com/user")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	defer resp.Body.Close()

	var user githubUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}

	// The public profile email may be hidden; fall back to the primary
	// verified address.
	if user.Email == "" {
		emailResp, err := client.Get("https://api.github.com/user/emails")
		if err != nil {
			return nil, fmt.Errorf("failed to fetch emails: %w", err)
		}
		defer emailResp.Body.Close()

		var emails []githubEmail
		if err := json.NewDecoder(emailResp.Body).Decode(&emails); err != nil {
			return nil, fmt.Errorf("failed to decode emails: %w", err)
		}
		for _, e := range emails {
			if e.Primary && e.Verified {
				user.Email = e.Email
				break
			}
		}
	}

	if user.Email == "" {
		return nil, fmt.Errorf("no verified email on GitHub account")
	}

	return &user, nil
}
