package xconf

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce 默认防抖时间
const DefaultDebounce = 100 * time.Millisecond

// WatchCallback 文件变更回调，err 非 nil 表示重载失败或监视出错（此时 f 仍是旧配置）。
type WatchCallback func(f *File, err error)

// WatchOption 监视器配置选项
type WatchOption func(*watchOptions)

type watchOptions struct {
	debounce time.Duration
}

// WithDebounce 设置防抖时间，窗口内的多次变更只触发一次重载。非正值被忽略。
func WithDebounce(d time.Duration) WatchOption {
	return func(o *watchOptions) {
		if d > 0 {
			o.debounce = d
		}
	}
}

// Watcher 配置文件监视器
type Watcher struct {
	file     *File
	watcher  *fsnotify.Watcher
	callback WatchCallback
	debounce time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.Mutex
	running bool
	stopped bool
	timer   *time.Timer
}

// Watch 创建配置文件监视器，需调用 Start 或 StartAsync 开始监视。
//
// 监视文件所在目录而非文件本身：编辑器保存时可能先删除再创建，直接监视文件会丢失事件。
func Watch(f *File, callback WatchCallback, opts ...WatchOption) (*Watcher, error) {
	if f == nil || f.path == "" {
		return nil, ErrNotReloadable
	}

	o := &watchOptions{debounce: DefaultDebounce}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("xconf: create watcher: %w", err)
	}
	dir := filepath.Dir(f.path)
	if err := fsw.Add(dir); err != nil {
		return nil, errors.Join(
			fmt.Errorf("xconf: watch directory %s: %w", dir, err),
			fsw.Close(),
		)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		file:     f,
		watcher:  fsw,
		callback: callback,
		debounce: o.debounce,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}, nil
}

// Watch 是包级 Watch 的便捷方法。
func (f *File) Watch(callback WatchCallback, opts ...WatchOption) (*Watcher, error) {
	return Watch(f, callback, opts...)
}

func (w *Watcher) markRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running || w.stopped {
		return false
	}
	w.running = true
	return true
}

// Start 启动监视，阻塞直到 Stop。
func (w *Watcher) Start() {
	if w.markRunning() {
		w.run()
	}
}

// StartAsync 在后台 goroutine 中启动监视并立即返回。
func (w *Watcher) StartAsync() {
	if w.markRunning() {
		go w.run()
	}
}

// Stop 停止监视并等待监视循环退出，可重复调用。
// 在回调中调用 Stop 是安全的。
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	running := w.running
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	w.cancel()
	err := w.watcher.Close()
	if running {
		<-w.done
	}
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	filename := filepath.Base(w.file.path)

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event, filename)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.callback != nil {
				w.callback(w.file, fmt.Errorf("xconf: watch error: %w", err))
			}
		}
	}
}

// handleEvent 只处理目标文件的 Write/Create/Rename 事件，重置防抖定时器。
func (w *Watcher) handleEvent(event fsnotify.Event, filename string) {
	if filepath.Base(event.Name) != filename {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	if w.ctx.Err() != nil {
		return
	}
	err := w.file.Reload()
	if w.callback != nil && w.ctx.Err() == nil {
		w.callback(w.file, err)
	}
}
