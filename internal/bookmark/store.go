package bookmark

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"
)

// Bookmark 一条收藏记录，URL 作为唯一键
type Bookmark struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
}

// ErrAlreadyExists 同一 URL 只允许收藏一次
var ErrAlreadyExists = errors.New("bookmark already exists")

// Store 内存中的收藏列表，每次变更后整体落盘到一个 JSON 文件。
// 所有变更串行化，add 的唯一性检查和读-改-写不会竞争
type Store struct {
	mu    sync.Mutex
	path  string
	items []Bookmark
}

// Open 加载收藏文件。文件不存在或解析失败时按空列表启动
func Open(path string) *Store {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("bookmark: read %s: %v, starting empty", path, err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s.items); err != nil {
		log.Printf("bookmark: parse %s: %v, starting empty", path, err)
		s.items = nil
	}
	return s
}

// List 返回收藏列表的副本，最新收藏在最前
func (s *Store) List() []Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Bookmark, len(s.items))
	copy(out, s.items)
	return out
}

// Add 新增收藏并落盘。URL 已存在时返回 ErrAlreadyExists；
// 落盘失败时回滚内存状态，不会留下半次写入
func (s *Store) Add(title, url, source string) (Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.items {
		if b.URL == url {
			return Bookmark{}, ErrAlreadyExists
		}
	}

	b := Bookmark{
		Title:     title,
		URL:       url,
		Source:    source,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	old := s.items
	s.items = append([]Bookmark{b}, s.items...)
	if err := s.persistLocked(); err != nil {
		s.items = old
		return Bookmark{}, fmt.Errorf("bookmark: persist: %w", err)
	}
	return b, nil
}

// Remove 按 URL 删除收藏并落盘。URL 不存在时也视为成功
func (s *Store) Remove(url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]Bookmark, 0, len(s.items))
	removed := false
	for _, b := range s.items {
		if b.URL == url {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	if !removed {
		return nil
	}

	old := s.items
	s.items = kept
	if err := s.persistLocked(); err != nil {
		s.items = old
		return fmt.Errorf("bookmark: persist: %w", err)
	}
	return nil
}

// persistLocked 整个列表序列化为一个 JSON 文档，先写临时文件再改名覆盖。
// 调用方需要持有锁
func (s *Store) persistLocked() error {
	items := s.items
	if items == nil {
		items = []Bookmark{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
