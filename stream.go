package spacesim

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/soniakeys/meeus/julian"
)

var (
	framesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spacesim_frames_total",
		Help: "Total number of simulation frames broadcast.",
	})
	transformsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spacesim_transforms_total",
		Help: "Total number of body transforms sent to stream clients.",
	})
	streamClients = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "spacesim_stream_clients",
		Help: "Number of currently connected transform stream clients.",
	})
)

func init() {
	prometheus.MustRegister(framesTotal)
	prometheus.MustRegister(transformsTotal)
	prometheus.MustRegister(streamClients)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// frameMessage is one websocket frame of the transform stream.
type frameMessage struct {
	Type   string      `json:"type"`
	TimeMs float64     `json:"t"`
	Bodies []Transform `json:"bodies"`
}

// metaMessage is sent once per connection, before any frame.
type metaMessage struct {
	Type      string  `json:"type"`
	System    string  `json:"system"`
	JD        float64 `json:"jd"`
	TimeScale float64 `json:"timeScale"`
	FrameRate int     `json:"frameRate"`
}

// StreamServer pushes the per-frame transforms of a System to websocket
// clients, i.e. to whatever external renderer turns them into pixels. It is
// the per-frame half of the renderer boundary; ExportPaths is the startup
// half.
type StreamServer struct {
	system *System
	logger kitlog.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewStreamServer returns a stream server for the provided system.
func NewStreamServer(s *System) *StreamServer {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "stream", s.Name)
	return &StreamServer{system: s, logger: klog, clients: make(map[*websocket.Conn]bool)}
}

// Handler returns the HTTP handler of the stream server: the websocket
// endpoint on /stream/transforms and the prometheus metrics on /metrics.
func (ss *StreamServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/stream/transforms", ss.handleTransforms)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (ss *StreamServer) handleTransforms(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		ss.logger.Log("err", err)
		return
	}
	meta := metaMessage{Type: "metadata", System: ss.system.Name, JD: julian.TimeToJD(time.Now().UTC()),
		TimeScale: simConfig().timeScale, FrameRate: simConfig().frameRate}
	if err = conn.WriteJSON(meta); err != nil {
		ss.logger.Log("err", err)
		conn.Close()
		return
	}
	ss.mu.Lock()
	ss.clients[conn] = true
	ss.mu.Unlock()
	streamClients.Inc()
	ss.logger.Log("client", conn.RemoteAddr().String(), "status", "connected")

	// Drain the connection until the client goes away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				ss.remove(conn)
				return
			}
		}
	}()
}

func (ss *StreamServer) remove(conn *websocket.Conn) {
	ss.mu.Lock()
	if ss.clients[conn] {
		delete(ss.clients, conn)
		streamClients.Dec()
	}
	ss.mu.Unlock()
	conn.Close()
}

// ClientCount returns the number of connected clients.
func (ss *StreamServer) ClientCount() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return len(ss.clients)
}

// Broadcast sends one frame worth of transforms to every connected client.
// Clients whose connection fails are dropped.
func (ss *StreamServer) Broadcast(tMs float64, transforms []Transform) {
	framesTotal.Inc()
	msg, err := json.Marshal(frameMessage{Type: "frame", TimeMs: tMs, Bodies: transforms})
	if err != nil {
		ss.logger.Log("err", err)
		return
	}
	ss.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(ss.clients))
	for conn := range ss.clients {
		conns = append(conns, conn)
	}
	ss.mu.Unlock()
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			ss.remove(conn)
			continue
		}
		transformsTotal.Add(float64(len(transforms)))
	}
}
