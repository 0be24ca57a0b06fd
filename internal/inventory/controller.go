package inventory

import (
	"context"
	"errors"
	"sync"

	"github.com/rogerio-castellano/inventory-console/internal/apperrors"
	"github.com/rogerio-castellano/inventory-console/internal/listview"
	"github.com/rogerio-castellano/inventory-console/internal/models"
	"go.uber.org/zap"
)

// ErrNoPendingDelete is returned by ConfirmDelete when no product was
// selected for deletion.
var ErrNoPendingDelete = errors.New("no product selected for deletion")

// API is the product service as seen by the controller.
type API interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, draft models.Draft) (models.Product, error)
	Delete(ctx context.Context, id int) error
}

// Snapshots stores the last fetched collection.
type Snapshots interface {
	Save(ctx context.Context, products []models.Product) error
	Load(ctx context.Context) ([]models.Product, bool, error)
}

// Controller owns the view State and runs the requests user actions need.
// All transitions go through Apply under a single lock.
type Controller struct {
	api       API
	snapshots Snapshots
	log       *zap.Logger
	onChange  func(State)

	// notify orders transitions together with their onChange call.
	notify sync.Mutex
	mu     sync.Mutex
	state  State
}

type Option func(*Controller)

func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

func WithSnapshots(s Snapshots) Option {
	return func(c *Controller) {
		c.snapshots = s
	}
}

// WithOnChange registers fn to be called with the new state after every
// transition. Calls never overlap and arrive in transition order; fn must not
// start another transition itself.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

func NewController(api API, opts ...Option) *Controller {
	c := &Controller{
		api:   api,
		log:   zap.NewNop(),
		state: NewState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) View() listview.Page {
	return c.State().View()
}

func (c *Controller) dispatch(e Event) State {
	c.notify.Lock()
	defer c.notify.Unlock()

	c.mu.Lock()
	c.state = Apply(c.state, e)
	s := c.state
	c.mu.Unlock()

	if c.onChange != nil {
		c.onChange(s)
	}
	return s
}

// Mount fetches the collection once. On failure the error is logged and the
// current list is kept, or replaced with the stored snapshot when one exists.
func (c *Controller) Mount(ctx context.Context) error {
	products, err := c.api.List(ctx)
	if err != nil {
		c.log.Error("failed to load products", zap.Error(err))
		c.loadSnapshot(ctx)
		return err
	}

	c.dispatch(ProductsLoaded{Products: products})
	c.saveSnapshot(ctx, products)
	return nil
}

func (c *Controller) loadSnapshot(ctx context.Context) {
	if c.snapshots == nil {
		return
	}
	products, ok, err := c.snapshots.Load(ctx)
	if err != nil {
		c.log.Warn("failed to load product snapshot", zap.Error(err))
		return
	}
	if !ok {
		return
	}
	c.log.Info("showing stored product snapshot", zap.Int("count", len(products)))
	c.dispatch(ProductsLoaded{Products: products})
}

func (c *Controller) saveSnapshot(ctx context.Context, products []models.Product) {
	if c.snapshots == nil {
		return
	}
	if err := c.snapshots.Save(ctx, products); err != nil {
		c.log.Warn("failed to save product snapshot", zap.Error(err))
	}
}

func (c *Controller) SetSearch(term string) {
	c.dispatch(SearchChanged{Term: term})
}

func (c *Controller) SelectPage(page int) {
	c.dispatch(PageSelected{Page: page})
}

// SetField updates one draft field from raw form input.
func (c *Controller) SetField(field, value string) error {
	if _, err := c.State().Draft.SetField(field, value); err != nil {
		return err
	}
	c.dispatch(DraftFieldChanged{Field: field, Value: value})
	return nil
}

// Submit validates the draft and, when it passes, creates the product. A
// validation failure opens the alert with its message and sends nothing.
func (c *Controller) Submit(ctx context.Context) error {
	draft := c.State().Draft

	if err := models.ValidateDraft(draft); err != nil {
		c.dispatch(DraftRejected{Message: alertMessage(err)})
		return err
	}

	created, err := c.api.Create(ctx, draft)
	if err != nil {
		c.log.Error("failed to add product", zap.String("name", draft.Name), zap.Error(err))
		c.dispatch(CreateFailed{})
		return err
	}

	c.dispatch(ProductCreated{Product: created})
	return nil
}

// RequestDelete opens the confirmation prompt for p. Nothing is sent yet.
func (c *Controller) RequestDelete(p models.Product) {
	c.dispatch(DeleteRequested{Product: p})
}

// ConfirmDelete deletes the pending product. On failure the error is logged
// and the prompt stays open.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	pending := c.State().PendingDelete
	if pending == nil {
		return ErrNoPendingDelete
	}

	if err := c.api.Delete(ctx, pending.ID); err != nil {
		c.log.Error("failed to delete product", zap.Int("product_id", pending.ID), zap.Error(err))
		return err
	}

	c.dispatch(ProductDeleted{ID: pending.ID})
	return nil
}

// CancelDelete closes the prompt without sending anything.
func (c *Controller) CancelDelete() {
	c.dispatch(DeleteCancelled{})
}

func (c *Controller) DismissAlert() {
	c.dispatch(AlertDismissed{})
}

func (c *Controller) MountAsync(ctx context.Context) *Task {
	return Go(ctx, c.Mount)
}

func (c *Controller) SubmitAsync(ctx context.Context) *Task {
	return Go(ctx, c.Submit)
}

func (c *Controller) ConfirmDeleteAsync(ctx context.Context) *Task {
	return Go(ctx, c.ConfirmDelete)
}

func alertMessage(err error) string {
	var vErr *apperrors.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	return err.Error()
}
