package pangasinan

import (
	"runtime"
	"sync"
)

// TranslateBatch translates many texts with a fixed pool of worker
// goroutines. Each text is independent; the whole batch is pinned to a
// single index generation and the returned slice mirrors the input
// order. workers <= 0 selects one worker per CPU.
func (t *Translator) TranslateBatch(texts []string, workers int) []TranslationResult {
	if len(texts) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(texts) {
		workers = len(texts)
	}

	idx := t.Index()
	results := make([]TranslationResult, len(texts))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = translate(texts[i], t.rules, idx)
			}
		}()
	}
	for i := range texts {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}
