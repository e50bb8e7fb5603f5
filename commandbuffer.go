package loom

import "sync"

type bufferedOpKind int

const (
	opSpawn bufferedOpKind = iota
	opDespawn
	opAddComponents
	opRemoveComponents
)

type bufferedOp struct {
	kind   bufferedOpKind
	values []interface{}
	entity Entity
	ids    []TypeId
}

// CommandBuffer is a deferred queue of structural mutations. Systems
// push operations into it instead of mutating the world directly while
// a phase's groups are running in parallel; the phase flushes the
// queue sequentially on the main thread once every group has
// completed. Append is mutex-protected because, unlike the teacher's
// single-threaded operation queue this is adapted from, loom's buffer
// is genuinely shared across a group's worker goroutines.
type CommandBuffer struct {
	mu  sync.Mutex
	ops []bufferedOp
}

// NewCommandBuffer returns an empty buffer.
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{}
}

func (cb *CommandBuffer) push(op bufferedOp) {
	cb.mu.Lock()
	cb.ops = append(cb.ops, op)
	cb.mu.Unlock()
}

// QueueSpawn defers a World.Spawn call.
func (cb *CommandBuffer) QueueSpawn(values ...interface{}) {
	cb.push(bufferedOp{kind: opSpawn, values: values})
}

// QueueDespawn defers a World.Despawn call.
func (cb *CommandBuffer) QueueDespawn(e Entity) {
	cb.push(bufferedOp{kind: opDespawn, entity: e})
}

// QueueAddComponents defers a World.AddComponents call.
func (cb *CommandBuffer) QueueAddComponents(e Entity, values ...interface{}) {
	cb.push(bufferedOp{kind: opAddComponents, entity: e, values: values})
}

// QueueRemoveComponents defers a World.RemoveComponentIDs call.
func (cb *CommandBuffer) QueueRemoveComponents(e Entity, ids ...TypeId) {
	cb.push(bufferedOp{kind: opRemoveComponents, entity: e, ids: ids})
}

// Flush drains every queued operation against w, in submission order,
// on the caller's goroutine. The phase calls this on the main thread
// after a phase's last group has completed.
func (cb *CommandBuffer) Flush(w *World) {
	cb.mu.Lock()
	ops := cb.ops
	cb.ops = nil
	cb.mu.Unlock()

	for _, op := range ops {
		switch op.kind {
		case opSpawn:
			w.Spawn(op.values...)
		case opDespawn:
			w.Despawn(op.entity)
		case opAddComponents:
			w.AddComponents(op.entity, op.values...)
		case opRemoveComponents:
			w.RemoveComponentIDs(op.entity, op.ids...)
		}
	}
}
