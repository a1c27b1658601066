package cmd

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/beeckusu/project-music-ear-training-sub000/chord"
	"github.com/beeckusu/project-music-ear-training-sub000/constants"
	"github.com/beeckusu/project-music-ear-training-sub000/guess"
	midinote "github.com/beeckusu/project-music-ear-training-sub000/midi"
	"github.com/beeckusu/project-music-ear-training-sub000/model"
	"github.com/beeckusu/project-music-ear-training-sub000/sampler"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord engine over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

var (
	chordSampler = sampler.New()

	quizMu  sync.Mutex
	quizzes = make(map[string]model.Chord)
)

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func chordResponse(c model.Chord) model.ChordResponse {
	res := model.ChordResponse{
		Root:        c.Root.String(),
		Quality:     c.Quality.String(),
		DisplayName: c.DisplayName,
		Inversion:   c.Inversion,
	}
	for _, n := range c.Notes {
		res.Notes = append(res.Notes, n.String())
		if num, err := midinote.ToMidi(n); err == nil {
			res.MidiNotes = append(res.MidiNotes, num)
		}
	}
	return res
}

func HandleBuild(w http.ResponseWriter, r *http.Request) {
	var input model.BuildRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "could not parse request body: "+err.Error())
		return
	}
	root, ok := model.ParsePitchClass(input.Root)
	if !ok {
		writeError(w, 400, "unknown root: "+input.Root)
		return
	}
	quality, ok := model.ParseQuality(input.Quality)
	if !ok {
		writeError(w, 400, "unknown quality: "+input.Quality)
		return
	}
	c, err := chord.Build(root, quality, input.Octave, input.Inversion)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}
	json.NewEncoder(w).Encode(chordResponse(c))
}

func HandleIdentify(w http.ResponseWriter, r *http.Request) {
	var input model.IdentifyRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "could not parse request body: "+err.Error())
		return
	}
	var notes []model.PitchedNote
	for _, num := range input.Notes {
		note, err := midinote.FromMidi(int(num))
		if err != nil {
			writeError(w, 400, err.Error())
			return
		}
		notes = append(notes, note)
	}
	c, ok := chord.Identify(notes)
	if !ok {
		json.NewEncoder(w).Encode(nil)
		return
	}
	json.NewEncoder(w).Encode(chordResponse(c))
}

func sampleFromBody(w http.ResponseWriter, r *http.Request) (model.Chord, bool) {
	var none model.Chord
	var input model.FilterBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "could not parse request body: "+err.Error())
		return none, false
	}
	filter, err := input.ToFilter()
	if err != nil {
		writeError(w, 400, err.Error())
		return none, false
	}
	c, err := chordSampler.SampleRandom(filter)
	if err != nil {
		if errors.Is(err, sampler.ErrNoValidChords) {
			writeError(w, 404, err.Error())
		} else {
			writeError(w, 500, err.Error())
		}
		return none, false
	}
	return c, true
}

func HandleRandom(w http.ResponseWriter, r *http.Request) {
	c, ok := sampleFromBody(w, r)
	if !ok {
		return
	}
	json.NewEncoder(w).Encode(chordResponse(c))
}

// HandleNewQuiz samples a chord, remembers it under a fresh id and returns
// both; the caller plays the notes and posts the user's guess back.
func HandleNewQuiz(w http.ResponseWriter, r *http.Request) {
	c, ok := sampleFromBody(w, r)
	if !ok {
		return
	}
	id := uuid.New().String()
	quizMu.Lock()
	quizzes[id] = c
	quizMu.Unlock()
	json.NewEncoder(w).Encode(model.QuizResponse{Id: id, Chord: chordResponse(c)})
}

func HandleGuess(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	quizMu.Lock()
	target, ok := quizzes[id]
	quizMu.Unlock()
	if !ok {
		writeError(w, 404, "no quiz with id "+id)
		return
	}
	var input model.GuessRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "could not parse request body: "+err.Error())
		return
	}
	json.NewEncoder(w).Encode(guess.Validate(input.Guess, target))
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/build", HandleBuild).Methods("POST")
	router.HandleFunc("/identify", HandleIdentify).Methods("POST")
	router.HandleFunc("/random", HandleRandom).Methods("POST")
	router.HandleFunc("/quiz", HandleNewQuiz).Methods("POST")
	router.HandleFunc("/quiz/{id}/guess", HandleGuess).Methods("POST")
	return router
}

func withRateLimit(limiter *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func serve() {
	godotenv.Load()
	limiter := rate.NewLimiter(rate.Limit(50), 100)
	handler := cors.Default().Handler(withRateLimit(limiter, NewRouter()))
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
