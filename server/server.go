package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"

	euchre "github.com/eadyb/EuchreMobile"
	"github.com/eadyb/EuchreMobile/game"
	"github.com/eadyb/EuchreMobile/protocol"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewGameReq struct {
	Name string `json:"name"`
}

type NewGameRes struct {
	GameID   string                `json:"game_id"`
	PlayerID string                `json:"player_id"`
	Name     string                `json:"name"`
	Seats    []protocol.PlayerInfo `json:"seats"`
}

type BonusReq struct {
	GameID string `json:"game_id"`
	Points int    `json:"points"`
}

// GameServer hosts euchre games over HTTP and websockets
type GameServer struct {
	store euchre.GameStore
	cfg   Config
	http.Server
}

// tableSeats describes the table: the human at seat 0 and three
// computer seats.
func tableSeats(playerID, name string) []protocol.PlayerInfo {
	seats := []protocol.PlayerInfo{
		{PlayerID: playerID, Name: name, Seat: 0},
	}
	for seat := 1; seat < 4; seat++ {
		seats = append(seats, protocol.PlayerInfo{
			PlayerID: euchre.NewID(),
			Name:     fmt.Sprintf("Computer %d", seat),
			Seat:     seat,
		})
	}
	return seats
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer
func NewServer(store euchre.GameStore, cfg Config) *GameServer {
	s := new(GameServer)
	s.store = store
	s.cfg = cfg

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleGameState))
	router.Handle("/bonus", http.HandlerFunc(s.HandleBonus))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	s.Addr = cfg.Addr
	s.Handler = handlers.LoggingHandler(os.Stdout,
		handlers.CORS(handlers.AllowedOrigins([]string{cfg.AllowedOrigin}))(router))

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewGame creates a game with the requester as the human at
// seat 0 and three computer seats.
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	gameID := euchre.NewID()
	playerID := euchre.NewID()

	engine, err := euchre.NewGameEngine(euchre.GameEngineOpts{
		GameID:    gameID,
		CreatorID: playerID,
		Game: game.NewEuchre(game.Opts{
			Dealer:    game.RandomDealer,
			HumanID:   playerID,
			WinTarget: g.cfg.WinTarget,
		}),
	})
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := g.store.AddGame(engine); err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	payload := NewGameRes{
		GameID:   gameID,
		PlayerID: playerID,
		Name:     data.Name,
		Seats:    tableSeats(playerID, data.Name),
	}

	w.WriteHeader(http.StatusCreated)
	w.Header().Add("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

// HandleGameState serves a snapshot of the table
func (g *GameServer) HandleGameState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := strings.Replace(r.URL.Path, "/game/", "", 1)
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	engine := g.store.FindGame(gameID)
	if engine == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	w.Header().Add("Content-Type", "application/json")
	json.NewEncoder(w).Encode(engine.Snapshot())
}

// HandleBonus credits host-granted bonus points to the player's team
func (g *GameServer) HandleBonus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data BonusReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	engine := g.store.FindGame(data.GameID)
	if engine == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(data.GameID)))
		return
	}

	if err := engine.SpendBonus(data.Points); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleWS attaches the human player's connection. Decision
// requests stream out as JSON frames; responses stream back in.
// The game starts on first connection.
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	engine := g.store.FindGame(gameID)
	if engine == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("failed to upgrade connection:", err.Error())
		return
	}

	if engine.PlayState() == euchre.Idle {
		go func() {
			err := engine.Play()
			if err != nil && err != euchre.ErrAlreadyPlaying {
				log.Printf("game %s ended with error: %s", gameID, err.Error())
			}
		}()
	}

	// request pump
	go func() {
		for req := range engine.Requests() {
			if err := conn.WriteJSON(req); err != nil {
				log.Println("failed to write decision request:", err.Error())
				return
			}
		}
	}()

	// response pump; a dead connection cancels the pending wait
	go func() {
		defer conn.Close()
		for {
			var resp protocol.DecisionResponse
			if err := conn.ReadJSON(&resp); err != nil {
				engine.Cancel()
				return
			}
			if err := engine.Respond(resp); err != nil {
				log.Println("failed to deliver response:", err.Error())
			}
		}
	}()
}

func writeParseError(err error, w http.ResponseWriter, r *http.Request) {
	log.Printf("failed to parse request body: %s", err.Error())
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte("could not parse request body"))
}
