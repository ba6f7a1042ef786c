package academic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cedbrasil/enrolld/config"
	"github.com/cedbrasil/enrolld/internal/core/domain"
	"github.com/cedbrasil/enrolld/pkg/apperror"

	"github.com/rs/zerolog"
)

// Client implements ports.AcademicClient against the OM school management
// API. Every request carries Basic auth; write operations additionally carry
// the unit token fetched per call. The API wraps everything in
// {"status":"true"|"false","data":...,"info":...}.
type Client struct {
	baseURL    string
	basicToken string
	unitID     string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates the client.
func NewClient(cfg config.AcademicConfig, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		basicToken: cfg.BasicToken,
		unitID:     cfg.UnitID,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("component", "academic_client").Logger(),
	}
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Info   string          `json:"info"`
}

func (e envelope) ok() bool { return e.Status == "true" }

// flexID tolerates the API returning ids as either strings or numbers.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// CountStudents returns the unit's total student count.
func (c *Client) CountStudents(ctx context.Context) (int, error) {
	env, err := c.get(ctx, "/alunos/total/"+c.unitID)
	if err != nil {
		return 0, err
	}
	if !env.ok() {
		return 0, apperror.ErrExternalRejected(env.Info)
	}
	var data struct {
		Total json.Number `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return 0, apperror.ErrExternalUnavailable("academic system", fmt.Errorf("decoding student total: %w", err))
	}
	total, err := strconv.Atoi(data.Total.String())
	if err != nil {
		return 0, apperror.ErrExternalUnavailable("academic system", fmt.Errorf("parsing student total: %w", err))
	}
	return total, nil
}

// CountStudentsByCodePrefix counts students whose code starts with prefix.
func (c *Client) CountStudentsByCodePrefix(ctx context.Context, prefix string) (int, error) {
	env, err := c.get(ctx, "/alunos?unidade_id="+url.QueryEscape(c.unitID)+"&cpf_like="+url.QueryEscape(prefix))
	if err != nil {
		return 0, err
	}
	if !env.ok() {
		return 0, apperror.ErrExternalRejected(env.Info)
	}
	var data []json.RawMessage
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return 0, apperror.ErrExternalUnavailable("academic system", fmt.Errorf("decoding student list: %w", err))
	}
	return len(data), nil
}

// FindStudentByCode returns the id of the student holding the code, or ""
// when the code is free.
func (c *Client) FindStudentByCode(ctx context.Context, code domain.RegistrationCode) (string, error) {
	env, err := c.get(ctx, "/alunos?unidade_id="+url.QueryEscape(c.unitID)+"&cpf="+url.QueryEscape(string(code)))
	if err != nil {
		return "", err
	}
	if !env.ok() {
		return "", apperror.ErrExternalRejected(env.Info)
	}
	var data []struct {
		ID flexID `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", apperror.ErrExternalUnavailable("academic system", fmt.Errorf("decoding student list: %w", err))
	}
	if len(data) == 0 {
		return "", nil
	}
	return string(data[0].ID), nil
}

// CreateStudent creates the student record and returns its id. A missing
// email is replaced with a dummy derived from the contact number, matching
// what the portal expects.
func (c *Client) CreateStudent(ctx context.Context, profile domain.StudentProfile) (string, error) {
	token, err := c.unitToken(ctx)
	if err != nil {
		return "", err
	}

	email := profile.Email
	if email == "" {
		email = profile.ContactNumber + "@nao-informado.com"
	}

	form := url.Values{}
	form.Set("token", token)
	form.Set("nome", profile.Name)
	form.Set("email", email)
	form.Set("whatsapp", profile.ContactNumber)
	form.Set("fone", profile.ContactNumber)
	form.Set("celular", profile.ContactNumber)
	form.Set("data_nascimento", "2000-01-01")
	form.Set("doc_cpf", string(profile.RegistrationCode))
	form.Set("doc_rg", "000000000")
	form.Set("pais", "Brasil")
	form.Set("uf", "DF")
	form.Set("cidade", "Brasília")
	form.Set("endereco", "Não informado")
	form.Set("bairro", "Centro")
	form.Set("cep", "70000-000")
	form.Set("complemento", "")
	form.Set("numero", "0")
	form.Set("unidade_id", c.unitID)
	form.Set("senha", profile.Password)

	env, err := c.postForm(ctx, "/alunos", form)
	if err != nil {
		return "", err
	}
	if !env.ok() {
		return "", classifyReason(env.Info, string(profile.RegistrationCode))
	}

	var data struct {
		ID flexID `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", apperror.ErrExternalUnavailable("academic system", fmt.Errorf("decoding created student: %w", err))
	}

	c.log.Info().
		Str("student_id", string(data.ID)).
		Str("code", string(profile.RegistrationCode)).
		Msg("student created")
	return string(data.ID), nil
}

// EnrollStudent binds the student to the discipline ids.
func (c *Client) EnrollStudent(ctx context.Context, studentID string, disciplineIDs []int) error {
	token, err := c.unitToken(ctx)
	if err != nil {
		return err
	}

	ids := make([]string, len(disciplineIDs))
	for i, id := range disciplineIDs {
		ids[i] = strconv.Itoa(id)
	}

	form := url.Values{}
	form.Set("token", token)
	form.Set("cursos", strings.Join(ids, ","))

	env, err := c.postForm(ctx, "/alunos/matricula/"+url.PathEscape(studentID), form)
	if err != nil {
		return err
	}
	if !env.ok() {
		return apperror.ErrExternalRejected(env.Info)
	}

	c.log.Info().
		Str("student_id", studentID).
		Str("disciplines", strings.Join(ids, ",")).
		Msg("student enrolled")
	return nil
}

// unitToken fetches the unit's write token.
func (c *Client) unitToken(ctx context.Context) (string, error) {
	env, err := c.get(ctx, "/unidades/token/"+url.PathEscape(c.unitID))
	if err != nil {
		return "", err
	}
	if !env.ok() {
		return "", apperror.ErrExternalRejected(env.Info)
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		return "", apperror.ErrExternalUnavailable("academic system", fmt.Errorf("decoding unit token"))
	}
	return data.Token, nil
}

func (c *Client) get(ctx context.Context, path string) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return c.do(req)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBufferString(form.Encode()))
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*envelope, error) {
	req.Header.Set("Authorization", "Basic "+c.basicToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.ErrExternalUnavailable("academic system", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, apperror.ErrExternalUnavailable("academic system", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, apperror.ErrExternalUnavailable("academic system",
			fmt.Errorf("non-JSON response (HTTP %d)", resp.StatusCode))
	}
	return &env, nil
}

// classifyReason maps the API's free-text rejection to the error taxonomy.
// The collision signal is a Portuguese substring in the info field; this is
// the only place that contract lives.
func classifyReason(info string, code string) error {
	lower := strings.ToLower(info)
	if strings.Contains(lower, "já está em uso") || strings.Contains(lower, "already in use") {
		return apperror.ErrCodeInUse(code)
	}
	return apperror.ErrExternalRejected(info)
}
