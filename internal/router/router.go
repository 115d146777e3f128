package router

import (
	"net/http"

	_ "animals-safety/docs"
	"animals-safety/internal/adapters/notify"
	mem "animals-safety/internal/adapters/storage/memory"
	"animals-safety/internal/domain/animals"
	"animals-safety/internal/middleware"
	"animals-safety/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => Nop

	// Opcional: store ya abierto (postgres/sqlite). Si no viene, in-memory.
	Animals animals.Repository

	// Notifier recibe los mensajes de validación (normalmente una notify.Queue
	// que drena en Recorder). Si es nil se usa Recorder directo (síncrono).
	Notifier animals.Notifier
	Recorder *notify.Recorder
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	repo := opts.Animals
	if repo == nil {
		repo = mem.NewAnimalRepo()
	}

	rec := opts.Recorder
	if rec == nil {
		rec = notify.NewRecorder(notify.DefaultHistory)
	}
	var notifier animals.Notifier = rec
	if opts.Notifier != nil {
		notifier = opts.Notifier
	}

	animalsSvc := animals.NewService(repo, notifier, log)

	animals.RegisterRoutes(r, animalsSvc)
	notify.RegisterRoutes(r, rec)

	return r
}
