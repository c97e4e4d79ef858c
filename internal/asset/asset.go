// Package asset names the game's images and sounds and tracks their loading.
//
// Every asset is optional: a failed load is recorded and the renderer falls
// back to placeholder shapes, so the game is playable with no files at all.
package asset

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// ErrMissing is returned by loaders when an asset does not exist.
var ErrMissing = errors.New("asset: missing")

// Name identifies an image or sound.
type Name string

// Images
const (
	PlayerIdle  Name = "playerIdle"
	PlayerRun1  Name = "playerRun1"
	PlayerRun2  Name = "playerRun2"
	PlayerJump  Name = "playerJump"
	PlayerShoot Name = "playerShoot"
	EnemyA      Name = "enemyA"
	EnemyAShoot Name = "enemyAShoot"
	EnemyB1     Name = "enemyB1"
	EnemyB2     Name = "enemyB2"
	EnemyC      Name = "enemyC"
	EnemyCShoot Name = "enemyCShoot"
	Background  Name = "background"
	Obstacle    Name = "obstacle"
)

// Sounds
const (
	BackgroundMusic Name = "bgMusic"
	ShootSound      Name = "shootSound"
	JumpSound       Name = "jumpSound"
)

// Images lists every image the game knows about.
var Images = []Name{
	PlayerIdle, PlayerRun1, PlayerRun2, PlayerJump, PlayerShoot,
	EnemyA, EnemyAShoot, EnemyB1, EnemyB2, EnemyC, EnemyCShoot,
	Background, Obstacle,
}

// Sounds lists every sound the game knows about.
var Sounds = []Name{BackgroundMusic, ShootSound, JumpSound}

// Image is a decoded image. Backends type-assert to their own representation.
type Image interface {
	Size() (width, height int)
}

// Loader fetches a single asset. Sounds are returned still encoded.
type Loader interface {
	LoadImage(ctx context.Context, name Name) (Image, error)
	LoadSound(ctx context.Context, name Name) ([]byte, error)
}

// Catalog holds the assets that loaded and records the ones that did not.
// Safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	images  map[Name]Image
	sounds  map[Name][]byte
	settled map[Name]struct{} // Loaded or failed
}

// NewCatalog creates an empty catalog with nothing settled.
func NewCatalog() *Catalog {
	return &Catalog{
		images:  make(map[Name]Image),
		sounds:  make(map[Name][]byte),
		settled: make(map[Name]struct{}),
	}
}

// Unavailable returns a catalog in which every asset has failed.
// It is ready immediately and every lookup misses.
func Unavailable() *Catalog {
	c := NewCatalog()
	for _, n := range Images {
		c.MarkFailed(n)
	}
	for _, n := range Sounds {
		c.MarkFailed(n)
	}
	return c
}

// SetImage stores a loaded image.
func (c *Catalog) SetImage(name Name, img Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images[name] = img
	c.settled[name] = struct{}{}
}

// SetSound stores loaded sound data.
func (c *Catalog) SetSound(name Name, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sounds[name] = data
	c.settled[name] = struct{}{}
}

// MarkFailed records that an asset could not be loaded.
func (c *Catalog) MarkFailed(name Name) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.images, name)
	delete(c.sounds, name)
	c.settled[name] = struct{}{}
}

// Image returns a loaded image.
func (c *Catalog) Image(name Name) (Image, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	img, ok := c.images[name]
	return img, ok
}

// Sound returns loaded sound data.
func (c *Catalog) Sound(name Name) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.sounds[name]
	return data, ok
}

// Progress returns how many assets have settled out of the total.
func (c *Catalog) Progress() (settled, total int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.settled), len(Images) + len(Sounds)
}

// Ready reports whether every asset has either loaded or failed.
func (c *Catalog) Ready() bool {
	settled, total := c.Progress()
	return settled >= total
}

// loadConcurrency bounds the number of in-flight loads.
const loadConcurrency = 4

// Load fetches every asset into the catalog. Individual failures are logged
// and recorded, never returned; only context cancellation aborts loading.
func Load(ctx context.Context, c *Catalog, l Loader, logger *log.Logger) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(loadConcurrency)

	for _, name := range Images {
		g.Go(func() error {
			img, err := l.LoadImage(ctx, name)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				logger.Warn("image unavailable, using placeholder", "name", name, "err", err)
				c.MarkFailed(name)
				return nil
			}
			c.SetImage(name, img)
			return nil
		})
	}
	for _, name := range Sounds {
		g.Go(func() error {
			data, err := l.LoadSound(ctx, name)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				logger.Warn("sound unavailable", "name", name, "err", err)
				c.MarkFailed(name)
				return nil
			}
			c.SetSound(name, data)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("load assets: %w", err)
	}
	logger.Debug("assets settled", "images", len(Images), "sounds", len(Sounds))
	return nil
}
