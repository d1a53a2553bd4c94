// Package server streams simulation state to websocket clients. It is a
// collaborator around the solver: it drives Step at a fixed cadence, samples
// the settled state between steps and broadcasts it as JSON frames.
package server

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/nihcosnosaj/macflow/pkg/fluid"
)

// Frame is one broadcast snapshot of the simulation. Velocities are averaged
// to cell centers, row-major with the row index outermost (offset = row*nx +
// col).
type Frame struct {
	Step int     `json:"step"`
	Nx   int     `json:"nx"`
	Ny   int     `json:"ny"`
	Dx   float64 `json:"dx"`

	U []float64 `json:"u"`
	V []float64 `json:"v"`

	MaxDivergence float64 `json:"maxDivergence"`
}

// Msg is a control message from a client.
type Msg struct {
	Type string `json:"type"`

	// Impulse parameters, used when Type is "impulse".
	I      int     `json:"i"`
	J      int     `json:"j"`
	Du     float64 `json:"du"`
	Dv     float64 `json:"dv"`
	Radius int     `json:"radius"`
}

// Hub owns one grid, steps it on a ticker and broadcasts frames to every
// connected client. All grid access happens on the Run goroutine; control
// messages are funneled through a channel so a step is never concurrent with
// an external mutation.
type Hub struct {
	grid *fluid.Grid
	dt   float64

	mu      sync.Mutex
	clients map[*websocket.Conn]bool

	msg  chan Msg
	done chan struct{}

	step int
}

// NewHub wraps an existing grid. The caller hands over ownership: it must not
// mutate the grid while the hub runs.
func NewHub(grid *fluid.Grid, dt float64) *Hub {
	return &Hub{
		grid:    grid,
		dt:      dt,
		clients: make(map[*websocket.Conn]bool),
		msg:     make(chan Msg, 16),
		done:    make(chan struct{}),
	}
}

// Run steps the simulation at the given interval and pushes a frame after
// every step until Stop is called.
func (h *Hub) Run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-h.done:
			return
		case msg := <-h.msg:
			h.handleMsg(msg)
		case <-ticker.C:
			h.grid.Step(h.dt)
			h.step++
			h.broadcast(h.buildFrame())
		}
	}
}

// Stop terminates the Run loop.
func (h *Hub) Stop() {
	close(h.done)
}

func (h *Hub) handleMsg(msg Msg) {
	switch msg.Type {
	case "impulse":
		h.grid.AddImpulse(msg.I, msg.J, msg.Du, msg.Dv, msg.Radius)
	case "reset":
		h.grid.Reset()
		h.step = 0
	default:
		log.WithField("type", msg.Type).Warn("no such message type")
	}
}

func (h *Hub) buildFrame() Frame {
	field := h.grid.Velocity()
	nx, ny := h.grid.Nx(), h.grid.Ny()
	frame := Frame{
		Step:          h.step,
		Nx:            nx,
		Ny:            ny,
		Dx:            h.grid.Dx(),
		U:             make([]float64, nx*ny),
		V:             make([]float64, nx*ny),
		MaxDivergence: h.grid.MaxDivergence(),
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			u, v, _ := field.At(i, j)
			frame.U[j*nx+i] = u
			frame.V[j*nx+i] = v
		}
	}
	return frame
}

func (h *Hub) broadcast(frame Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(&frame); err != nil {
			log.WithError(err).Info("dropping client")
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	if h.clients[conn] {
		conn.Close()
		delete(h.clients, conn)
	}
	h.mu.Unlock()
}
