// Package app holds the demo application: a tiny notes service whose
// pieces are all wired through the LiteFlare container.
package app

import (
	"net/http"
	"sync"

	"go.uber.org/zap"

	fwapp "github.com/kgw94/go-liteflare/framework/app"
	"github.com/kgw94/go-liteflare/framework/config"
	"github.com/kgw94/go-liteflare/framework/container"
	gohttp "github.com/kgw94/go-liteflare/http"
	"github.com/kgw94/go-liteflare/routing"
)

// ── Services ─────────────────────────────────────────────────────────────────

// Connection is a stand-in for a database handle.
type Connection struct {
	DSN string
}

// Note is the demo record type.
type Note struct {
	ID   int    `json:"id"`
	Body string `json:"body"`
}

// NoteRepository stores notes in memory behind a Connection.
type NoteRepository struct {
	Conn *Connection

	mu    sync.Mutex
	notes []Note
}

func NewNoteRepository(conn *Connection) *NoteRepository {
	return &NoteRepository{
		Conn: conn,
		notes: []Note{
			{ID: 1, Body: "ship it"},
		},
	}
}

// All returns every stored note.
func (r *NoteRepository) All() []Note {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Note(nil), r.notes...)
}

// Add appends a note and returns it with its assigned ID.
func (r *NoteRepository) Add(body string) Note {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := Note{ID: len(r.notes) + 1, Body: body}
	r.notes = append(r.notes, n)
	return n
}

// NotesController serves the /notes endpoints.
type NotesController struct {
	Repo *NoteRepository
	Log  *zap.Logger
}

func (ctl *NotesController) Handle(w http.ResponseWriter, r *http.Request) {
	notes := ctl.Repo.All()
	ctl.Log.Debug("listing notes", zap.Int("count", len(notes)))
	gohttp.NewResponse(w).Success(notes)
}

// ── Wiring ───────────────────────────────────────────────────────────────────

// RegisterServices binds the demo services into the application container.
// Only NoteRepository is explicitly registered (as a singleton so every
// request shares the store); Connection and NotesController auto-wire from
// their blueprints.
func RegisterServices(a *fwapp.Application) {
	a.DefineType("Connection", container.Blueprint{
		Params: []container.Param{container.Dep("config", "config")},
		Build: func(args ...any) (any, error) {
			db := args[0].(*config.Config).DB
			return &Connection{DSN: db.Driver + "://" + db.Host + ":" + db.Port + "/" + db.Database}, nil
		},
	})

	a.DefineType("NoteRepository", container.Blueprint{
		Params: []container.Param{container.Dep("conn", "Connection")},
		Build: func(args ...any) (any, error) {
			return NewNoteRepository(args[0].(*Connection)), nil
		},
	})
	a.RegisterSingleton("NoteRepository", nil)

	a.DefineType("NotesController", container.Blueprint{
		Params: []container.Param{
			container.Dep("repo", "NoteRepository"),
			container.Dep("log", "logger"),
		},
		Build: func(args ...any) (any, error) {
			return &NotesController{
				Repo: args[0].(*NoteRepository),
				Log:  args[1].(*zap.Logger),
			}, nil
		},
	})
}

// RegisterRoutes maps the HTTP surface onto the container-bound services.
func RegisterRoutes(a *fwapp.Application) {
	r := a.Router()

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		gohttp.NewResponse(w).Success(map[string]any{"message": "Welcome to LiteFlare!"})
	})

	r.Prefix("/api/v1", func(api *routing.Router) {
		api.GetService("/notes", "NotesController")
	})
}
