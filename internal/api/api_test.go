package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"github.com/jdmorgan/noughts/internal/api"
	"github.com/jdmorgan/noughts/internal/api/response"
	"github.com/jdmorgan/noughts/internal/factory"
	"github.com/jdmorgan/noughts/internal/model"
	"github.com/jdmorgan/noughts/internal/testutil"
)

type APITestSuite struct {
	suite.Suite

	app    *factory.App
	server *httptest.Server
	wsURL  string
}

func (s *APITestSuite) SetupTest() {
	app, err := factory.New(factory.Config{Logger: testutil.NopLogger()})
	s.Require().NoError(err)
	s.app = app

	router := api.NewRouter(api.RouterConfig{
		Logger:     testutil.NopLogger(),
		Matchmaker: app.Matchmaker,
		Engine:     app.MatchEngine,
		Registry:   app.Registry,
	})
	s.server = httptest.NewServer(router)
	s.wsURL = "ws" + strings.TrimPrefix(s.server.URL, "http") + "/connect"
}

func (s *APITestSuite) TearDownTest() {
	s.server.Close()
	s.app.Shutdown()
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) post(path string, body any) *http.Response {
	data, err := json.Marshal(body)
	s.Require().NoError(err)

	resp, err := http.Post(s.server.URL+path, "application/json", bytes.NewReader(data))
	s.Require().NoError(err)
	return resp
}

func (s *APITestSuite) decodeMatch(resp *http.Response) response.Match {
	defer func() { _ = resp.Body.Close() }()
	var m response.Match
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&m))
	return m
}

func (s *APITestSuite) errorCode(resp *http.Response) string {
	defer func() { _ = resp.Body.Close() }()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	return body.Error.Code
}

func (s *APITestSuite) join(playerID string) response.Match {
	resp := s.post("/api/v1/matches", map[string]string{"player_id": playerID})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	return s.decodeMatch(resp)
}

func (s *APITestSuite) turn(matchID, playerID string, x, y int) *http.Response {
	return s.post(fmt.Sprintf("/api/v1/matches/%s/turns", matchID),
		map[string]any{"player_id": playerID, "x": x, "y": y})
}

// connect opens a websocket and registers the player id
func (s *APITestSuite) connect(playerID string) *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial(s.wsURL, nil)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })

	msg := model.ClientMessage{Type: model.EventRegister, ID: model.PlayerID(playerID)}
	s.Require().NoError(conn.WriteJSON(msg))

	var ack model.Event
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	s.Require().NoError(conn.ReadJSON(&ack))
	s.Require().Equal(model.EventRegisterAck, ack.Type)
	return conn
}

func (s *APITestSuite) readEvent(conn *websocket.Conn) model.Event {
	var ev model.Event
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	s.Require().NoError(conn.ReadJSON(&ev))
	return ev
}

func (s *APITestSuite) TestJoinCreatesWaitingMatch() {
	m := s.join("p1")

	s.NotEmpty(m.MatchID)
	s.Equal(string(model.MatchStateWaiting), m.Status)
	s.Equal("p1", m.Player1ID)
	s.Empty(m.Player2ID)
}

func (s *APITestSuite) TestSecondJoinStartsMatch() {
	first := s.join("p1")
	second := s.join("p2")

	s.Equal(first.MatchID, second.MatchID)
	s.Equal(string(model.MatchStateInProgress), second.Status)
	s.Equal("p1", second.Player1ID)
	s.Equal("p2", second.Player2ID)
}

func (s *APITestSuite) TestGetMatchStatus() {
	m := s.join("p1")

	resp, err := http.Get(s.server.URL + "/api/v1/matches/" + m.MatchID)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)

	got := s.decodeMatch(resp)
	s.Equal(m.MatchID, got.MatchID)
	s.Equal(string(model.MatchStateWaiting), got.Status)
}

func (s *APITestSuite) TestGetMatchNotFound() {
	resp, err := http.Get(s.server.URL + "/api/v1/matches/nope")
	s.Require().NoError(err)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("MATCH_NOT_FOUND", s.errorCode(resp))
}

func (s *APITestSuite) TestJoinValidation() {
	resp := s.post("/api/v1/matches", map[string]string{})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("INVALID_REQUEST", s.errorCode(resp))

	resp2, err := http.Post(s.server.URL+"/api/v1/matches", "application/json",
		strings.NewReader("not json"))
	s.Require().NoError(err)
	s.Equal(http.StatusBadRequest, resp2.StatusCode)
	s.Equal("INVALID_REQUEST", s.errorCode(resp2))
}

func (s *APITestSuite) TestTurnErrorMapping() {
	m := s.join("p1")
	_ = s.join("p2")

	// out of turn
	resp := s.turn(m.MatchID, "p2", 0, 0)
	s.Equal(http.StatusForbidden, resp.StatusCode)
	s.Equal("NOT_YOUR_TURN", s.errorCode(resp))

	// good move
	resp = s.turn(m.MatchID, "p1", 0, 0)
	s.Equal(http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	// occupied cell
	resp = s.turn(m.MatchID, "p2", 0, 0)
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("CELL_OCCUPIED", s.errorCode(resp))

	// out of bounds
	resp = s.turn(m.MatchID, "p2", 7, 0)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("INVALID_MOVE", s.errorCode(resp))

	// not a participant
	resp = s.turn(m.MatchID, "stranger", 1, 1)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("UNKNOWN_PLAYER", s.errorCode(resp))

	// unknown match
	resp = s.turn("nope", "p1", 0, 0)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("MATCH_NOT_FOUND", s.errorCode(resp))
}

func (s *APITestSuite) TestTurnOnWaitingMatch() {
	m := s.join("p1")

	resp := s.turn(m.MatchID, "p1", 0, 0)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("MATCH_NOT_FOUND", s.errorCode(resp))
}

func (s *APITestSuite) TestFullGameOverWebsocket() {
	p1 := s.connect("p1")
	p2 := s.connect("p2")

	m := s.join("p1")

	ev := s.readEvent(p1)
	s.Equal(model.EventMatchCreated, ev.Type)
	s.Equal(model.MatchID(m.MatchID), ev.MatchID)

	_ = s.join("p2")

	ev = s.readEvent(p1)
	s.Equal(model.EventOpponentFound, ev.Type)

	// p1 takes row 0, p2 plays along row 1
	moves := []struct {
		player string
		x, y   int
	}{
		{"p1", 0, 0},
		{"p2", 1, 0},
		{"p1", 0, 1},
		{"p2", 1, 1},
		{"p1", 0, 2},
	}
	for _, mv := range moves {
		resp := s.turn(m.MatchID, mv.player, mv.x, mv.y)
		s.Require().Equal(http.StatusNoContent, resp.StatusCode)
		_ = resp.Body.Close()

		want := 1
		if mv.player == "p2" {
			want = 2
		}
		for _, conn := range []*websocket.Conn{p1, p2} {
			ev := s.readEvent(conn)
			s.Equal(model.EventTurnMade, ev.Type)
			s.Equal(want, ev.Board[mv.x][mv.y])
		}
	}

	// both players see game_ended after the final turn_made
	for _, conn := range []*websocket.Conn{p1, p2} {
		ended := s.readEvent(conn)
		s.Equal(model.EventGameEnded, ended.Type)
		s.Equal(model.PlayerID("p1"), ended.WinnerID)
		s.False(ended.Draw)
	}

	// the record reflects the result
	resp, err := http.Get(s.server.URL + "/api/v1/matches/" + m.MatchID)
	s.Require().NoError(err)
	got := s.decodeMatch(resp)
	s.Equal(string(model.MatchStateFinished), got.Status)
	s.Require().NotNil(got.Winner)
	s.Equal("p1", *got.Winner)
}

func (s *APITestSuite) TestPlayWithoutConnections() {
	// Events go nowhere, the HTTP flow still works end to end
	m := s.join("p1")
	_ = s.join("p2")

	resp := s.turn(m.MatchID, "p1", 0, 0)
	s.Equal(http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()
}

func (s *APITestSuite) TestHealth() {
	resp, err := http.Get(s.server.URL + "/api/v1/health")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	s.Equal(http.StatusOK, resp.StatusCode)
}
