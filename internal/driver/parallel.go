package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"prim/internal/diag"
	"prim/internal/observ"
	"prim/internal/project"
	"prim/internal/source"
)

// CheckDirResult содержит результат проверки одного файла
type CheckDirResult struct {
	Path   string        // Относительный путь к файлу
	FileID source.FileID // ID файла в FileSet
	Bag    *diag.Bag     // Диагностики, уже отсортированные
	Cached bool          // true, если диагностики пришли из кеша
	Timing *observ.Report
}

// ListSourceFiles возвращает отсортированный список файлов с расширениями
// из манифеста. Исключённые директории не обходятся; сам корень обхода
// исключением не считается.
func ListSourceFiles(dir string, cfg project.Config) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && cfg.ExcludedDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if cfg.MatchesExtension(path) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CheckDir проверяет все подходящие файлы директории параллельно.
// Результаты идут в порядке отсортированных путей независимо от того,
// в каком порядке завершились горутины.
func CheckDir(ctx context.Context, dir string, opts CheckOptions) (*source.FileSet, []CheckDirResult, error) {
	opts = opts.withDefaults()
	if opts.Events != nil {
		defer close(opts.Events)
	}

	// Собираем список файлов
	files, err := ListSourceFiles(dir, opts.Config)
	if err != nil {
		return nil, nil, err
	}

	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	// Создаём FileSet и предзагружаем все файлы: FileSet не потокобезопасен,
	// поэтому вся запись в него происходит до старта горутин.
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			// Сохраняем ошибку загрузки для последующей обработки
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	// Настраиваем параллелизм
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]CheckDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				// Проверка отмены
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				emitEvent(gctx, opts.Events, Event{
					Kind:  EventFileStart,
					Path:  path,
					Index: i,
					Total: len(files),
				})

				bag := diag.NewBag(opts.MaxDiagnostics)

				// Проверяем ошибку загрузки
				if loadErr, hadError := loadErrors[path]; hadError {
					bag.Add(diag.Diagnostic{
						Severity: diag.SevError,
						Code:     diag.IOLoadFileError,
						Message:  "failed to load file: " + loadErr.Error(),
						Primary:  source.Span{},
					})
					results[i] = CheckDirResult{
						Path: path,
						Bag:  bag,
					}
					emitEvent(gctx, opts.Events, Event{
						Kind:        EventFileDone,
						Path:        path,
						Index:       i,
						Total:       len(files),
						Diagnostics: bag.Len(),
					})
					return nil
				}

				fileID := fileIDs[path]
				file := fileSet.Get(fileID)

				var timer *observ.Timer
				if opts.EnableTimings {
					timer = observ.NewTimer()
				}

				_, cached := checkLoadedFile(file, fileID, opts, timer, bag)

				var timing *observ.Report
				if timer != nil {
					report := timer.Report()
					timing = &report
					appendTimingDiagnostic(bag, timingPayload{
						Kind:    "file",
						Path:    path,
						TotalMS: report.TotalMS,
						Phases:  report.Phases,
					})
				}

				// Сохраняем результат: индекс i уникален, мьютекс не нужен
				results[i] = CheckDirResult{
					Path:   path,
					FileID: fileID,
					Bag:    bag,
					Cached: cached,
					Timing: timing,
				}

				emitEvent(gctx, opts.Events, Event{
					Kind:        EventFileDone,
					Path:        path,
					Index:       i,
					Total:       len(files),
					Diagnostics: bag.Len(),
					Cached:      cached,
				})

				return nil
			}
		}(i, path))
	}

	// Ждём завершения всех горутин
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	return fileSet, results, nil
}
