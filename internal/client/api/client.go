// Package api is the typed client for the dating HTTP API. Every call goes through the
// standard pipeline, and photo operations mirror the main image into the session once the
// server has confirmed them.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dating/internal/client/notify"
	"dating/internal/client/pipeline"
	"dating/internal/client/session"
	"dating/internal/errors"
)

const defaultTimeout = 30 * time.Second

// Options configures a Client. HTTPClient, Notifier, Logger and CacheTTL fall back to
// defaults; Busy is optional.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Store      *session.Store
	Notifier   notify.Notifier
	Busy       *pipeline.BusyCounter
	CacheTTL   time.Duration
	Logger     *slog.Logger
}

type Client struct {
	do          pipeline.Handler
	store       *session.Store
	cache       *pipeline.ResponseCache
	logger      *slog.Logger
	unsubscribe func()
}

// New builds a client. The response cache is cleared whenever the session changes.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("api base URL is required")
	}
	if opts.Store == nil {
		return nil, errors.New("session store is required")
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.NewLogNotifier(opts.Logger)
	}

	cache := pipeline.NewResponseCache(opts.CacheTTL)
	client := &Client{
		do: pipeline.Standard(pipeline.Dispatcher(opts.HTTPClient, opts.BaseURL), pipeline.Options{
			Store:    opts.Store,
			Notifier: opts.Notifier,
			Busy:     opts.Busy,
			Cache:    cache,
		}),
		store:  opts.Store,
		cache:  cache,
		logger: opts.Logger,
	}
	client.unsubscribe = opts.Store.Subscribe(func(*session.Session) { cache.Clear() })

	return client, nil
}

// Close detaches the client from the session store.
func (c *Client) Close() {
	c.unsubscribe()
}

// Register creates an account and installs the returned session.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*session.Session, error) {
	return c.authenticate(ctx, "/account/register", req)
}

// Login verifies credentials and installs the returned session.
func (c *Client) Login(ctx context.Context, email, password string) (*session.Session, error) {
	return c.authenticate(ctx, "/account/login", LoginRequest{Email: email, Password: password})
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (*session.Session, error) {
	var out sessionPayload
	if err := c.sendJSON(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}

	current := &session.Session{
		AccountID:    out.ID,
		DisplayName:  out.DisplayName,
		MainImageURL: out.MainImageURL,
		Token:        out.Token,
		TokenExpiry:  out.TokenExpiry,
	}
	if err := c.store.SetCurrentUser(current); err != nil {
		return nil, errors.Wrap(err, "store session")
	}

	return c.store.Current(), nil
}

// Logout drops the session locally. Tokens are stateless, so the server is not called.
func (c *Client) Logout() error {
	return c.store.Logout()
}

func (c *Client) ListMembers(ctx context.Context) ([]*Member, error) {
	var members []*Member
	if err := c.sendJSON(ctx, http.MethodGet, "/members", nil, &members); err != nil {
		return nil, err
	}

	return members, nil
}

func (c *Client) GetMember(ctx context.Context, id string) (*Member, error) {
	var member Member
	if err := c.sendJSON(ctx, http.MethodGet, "/members/"+url.PathEscape(id), nil, &member); err != nil {
		return nil, err
	}

	return &member, nil
}

func (c *Client) GetMemberPhotos(ctx context.Context, id string) ([]*Photo, error) {
	var photos []*Photo
	if err := c.sendJSON(ctx, http.MethodGet, "/members/"+url.PathEscape(id)+"/photos", nil, &photos); err != nil {
		return nil, err
	}

	return photos, nil
}

// UpdateMember saves the caller's profile. A new display name is mirrored into the session.
func (c *Client) UpdateMember(ctx context.Context, update MemberUpdate) error {
	owner := c.owner()
	if err := c.sendJSON(ctx, http.MethodPut, "/members", update, nil); err != nil {
		return err
	}

	if update.DisplayName != nil {
		if err := c.store.UpdateDisplayName(owner, *update.DisplayName); err != nil {
			return errors.Wrap(err, "mirror display name")
		}
	}

	return nil
}

// UploadPhoto sends a photo file. When the server made it the main image, the session
// mirrors its URL.
func (c *Client) UploadPhoto(ctx context.Context, filename string, content []byte) (*Photo, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, errors.Wrap(err, "create form file")
	}
	if _, err := part.Write(content); err != nil {
		return nil, errors.Wrap(err, "write form file")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "close multipart writer")
	}

	req := pipeline.NewRequest(http.MethodPost, "/members/add-photo", body.Bytes())
	req.Header.Set("Content-Type", writer.FormDataContentType())

	owner := c.owner()
	var photo Photo
	if err := c.send(ctx, req, &photo); err != nil {
		return nil, err
	}

	if photo.IsMain {
		if err := c.mirrorMainImage(owner, &photo.URL); err != nil {
			return nil, err
		}
	}

	return &photo, nil
}

// SetMainPhoto makes photo the main image and mirrors its URL once the server confirms.
func (c *Client) SetMainPhoto(ctx context.Context, photo *Photo) error {
	path := "/members/set-main-photo/" + strconv.FormatInt(photo.ID, 10)
	owner := c.owner()
	if err := c.sendJSON(ctx, http.MethodPut, path, nil, nil); err != nil {
		return err
	}

	mainURL := photo.URL

	return c.mirrorMainImage(owner, &mainURL)
}

// DeletePhoto removes a photo. The server may have promoted another photo or cleared the
// main image, so the caller's member is re-read and its main image mirrored. A failed
// re-read is logged and does not fail the delete, which the server has already committed.
func (c *Client) DeletePhoto(ctx context.Context, photoID int64) error {
	path := "/members/delete-photo/" + strconv.FormatInt(photoID, 10)
	owner := c.owner()
	if err := c.sendJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}
	if owner == "" {
		return nil
	}

	self, err := c.GetMember(ctx, owner)
	if err != nil {
		c.logger.WarnContext(ctx, "Could not refresh member after photo delete",
			slog.String("accountID", owner),
			slog.Int64("photoID", photoID),
			slog.Any("error", err),
		)

		return nil
	}

	return c.mirrorMainImage(owner, self.MainImageURL)
}

// owner is the account a mutation is sent as; its response is mirrored only into that
// account's session.
func (c *Client) owner() string {
	if current := c.store.Current(); current != nil {
		return current.AccountID
	}

	return ""
}

func (c *Client) mirrorMainImage(accountID string, mainURL *string) error {
	if err := c.store.UpdateMainImage(accountID, mainURL); err != nil {
		return errors.Wrap(err, "mirror main image")
	}

	return nil
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		body = data
	}

	req := pipeline.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(ctx, req, out)
}

func (c *Client) send(ctx context.Context, req *pipeline.Request, out any) error {
	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || resp.Status == http.StatusNoContent {
		return nil
	}

	envelope := dataEnvelope{Data: out}
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		c.logger.WarnContext(ctx, "Undecodable API response",
			slog.String("method", req.Method),
			slog.String("path", req.Path),
			slog.Int("status", resp.Status),
		)

		return errors.Wrapf(err, "decode %s %s", req.Method, req.Path)
	}

	return nil
}
