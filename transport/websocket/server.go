package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/rocketscienceinc/rung-backend/internal/entity"
	"github.com/rocketscienceinc/rung-backend/internal/usecase"
)

const writeTimeout = 5 * time.Second

type gameUseCase interface {
	Subscribe(listener usecase.Listener) func()

	StartGame(ctx context.Context, playerCount int, variant entity.RuleVariant) (*entity.Game, error)
	ChooseTrump(ctx context.Context, suit entity.Suit) (*entity.Game, error)
	PlayCard(ctx context.Context, seat, cardIndex int) (*entity.Game, *entity.TrickResult, error)
	AdvanceToNextTrick(ctx context.Context) (*entity.Game, error)

	Game(ctx context.Context) (*entity.Game, error)
	LegalPlays(ctx context.Context, seat int) ([]int, error)
}

// Defaults are used by game:start when the payload leaves a field out.
type Defaults struct {
	PlayerCount int
	RuleVariant entity.RuleVariant
}

type handlerFunc func(ctx context.Context, conn *websocket.Conn, payload json.RawMessage) error

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	defaults    Defaults

	handlers    map[string]handlerFunc
	unsubscribe func()

	connectionsMutex sync.Mutex
	connections      map[*websocket.Conn]struct{}
}

// New - creates the server and subscribes it to game events, which are broadcast to every connection.
func New(logger *slog.Logger, gameUseCase gameUseCase, defaults Defaults) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameUseCase: gameUseCase,
		defaults:    defaults,

		handlers:    make(map[string]handlerFunc),
		connections: make(map[*websocket.Conn]struct{}),
	}

	server.handlers[actionStart] = server.handleStart
	server.handlers[actionTrump] = server.handleTrump
	server.handlers[actionPlay] = server.handlePlay
	server.handlers[actionAdvance] = server.handleAdvance
	server.handlers[actionState] = server.handleState

	server.unsubscribe = gameUseCase.Subscribe(server.broadcast)

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.handleConnection)

	return mux
}

// Start - starts WebSocket server and blocks until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	defer that.unsubscribe()

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) handleConnection(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "handleConnection")

	conn, err := websocket.Accept(writer, req, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Error("failed to accept connection", "error", err)
		return
	}
	defer conn.CloseNow()

	that.addConnection(conn)
	defer that.removeConnection(conn)

	log.Info("WebSocket connection established", "remote", req.RemoteAddr)

	if err = that.handleMessages(req.Context(), conn); err != nil {
		log.Error("error handling messages", "error", err)
		return
	}

	conn.Close(websocket.StatusNormalClosure, "")
}

// handleMessages - processes messages from the client until it goes away.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		msgType, data, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		if msgType != websocket.MessageText {
			that.sendError(ctx, conn, "", errUnsupportedFrame)
			continue
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			that.sendError(ctx, conn, "", fmt.Errorf("%w: %w", errMalformedMessage, err))
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			that.sendError(ctx, conn, message.Action, fmt.Errorf("%w: %q", errUnknownAction, message.Action))
			continue
		}

		if err = handler(ctx, conn, message.Payload); err != nil {
			log.Warn("command rejected", "action", message.Action, "error", err)
			that.sendError(ctx, conn, message.Action, err)
		}
	}
}

// broadcast - runs inside the game manager, so it only writes.
func (that *Server) broadcast(event entity.Event) {
	log := that.logger.With("method", "broadcast")

	message, err := eventMessage(event)
	if err != nil {
		log.Error("failed to build event message", "type", event.Type, "error", err)
		return
	}

	that.connectionsMutex.Lock()
	conns := make([]*websocket.Conn, 0, len(that.connections))
	for conn := range that.connections {
		conns = append(conns, conn)
	}
	that.connectionsMutex.Unlock()

	for _, conn := range conns {
		if err = that.write(context.Background(), conn, message); err != nil {
			log.Warn("failed to deliver event", "type", event.Type, "error", err)
		}
	}
}

func (that *Server) sendMessage(ctx context.Context, conn *websocket.Conn, action string, payload any) error {
	message, err := newMessage(action, payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	return that.write(ctx, conn, message)
}

func (that *Server) sendError(ctx context.Context, conn *websocket.Conn, action string, cause error) {
	payload := ErrorPayload{
		Action: action,
		Kind:   errorKind(cause),
		Error:  cause.Error(),
	}

	if err := that.sendMessage(ctx, conn, actionError, payload); err != nil {
		that.logger.Warn("failed to send error", "action", action, "error", err)
	}
}

func (that *Server) write(ctx context.Context, conn *websocket.Conn, message *Message) error {
	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err := wsjson.Write(writeCtx, conn, message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) addConnection(conn *websocket.Conn) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	that.connections[conn] = struct{}{}
}

func (that *Server) removeConnection(conn *websocket.Conn) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	delete(that.connections, conn)
}
