package server

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"testing"

	euchre "github.com/eadyb/EuchreMobile"
	utils "github.com/eadyb/EuchreMobile/internal"
)

func testConfig() Config {
	return Config{
		Addr:          ":0",
		AllowedOrigin: "*",
		WinTarget:     10,
	}
}

func newTestServer() *GameServer {
	return NewServer(euchre.NewInMemoryGameStore(), testConfig())
}

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func newCreateGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", bytes.NewBuffer(data))
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func assertNewGameResponse(t *testing.T, body *bytes.Buffer, want string) *NewGameRes {
	t.Helper()
	bodyBytes, err := ioutil.ReadAll(body)
	utils.AssertNoError(t, err)

	var got NewGameRes
	err = json.Unmarshal(bodyBytes, &got)
	if err != nil {
		t.Fatalf("Could not unmarshal json: %s", err.Error())
	}
	if got.Name != want {
		t.Errorf("Got %s, want %s", got.Name, want)
	}
	if len(got.GameID) == 0 {
		t.Error("Expected a game id")
	}
	if len(got.PlayerID) == 0 {
		t.Error("Expected a player id")
	}
	if len(got.Seats) != 4 {
		t.Errorf("Expected 4 seats, got %d", len(got.Seats))
	}
	return &got
}
