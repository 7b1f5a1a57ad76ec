package catalog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"slices"
	"strings"
	"time"

	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/tidwall/gjson"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const component = "catalog.loader"

// 데이터 디렉토리 안의 데이터셋 파일 이름입니다.
const (
	BooksFile      = "books.json"
	PacksFile      = "packs.json"
	ExamsFile      = "exams.json"
	EditorialsFile = "editorials.json"
)

// Catalog 한 번의 적재로 만들어진 불변 상품 카탈로그입니다.
type Catalog struct {
	products   []Product
	index      map[string]int
	editorials EditorialMap
	loadedAt   time.Time
}

// NewCatalog 상품 목록과 출판사 디렉토리로 Catalog를 생성합니다.
// 상품 ID가 중복되면 ValidationError를 반환합니다.
func NewCatalog(products []Product, editorials EditorialMap) (*Catalog, error) {
	c := &Catalog{
		products:   slices.Clone(products),
		index:      make(map[string]int, len(products)),
		editorials: EditorialMap{},
		loadedAt:   time.Now(),
	}
	for id, name := range editorials {
		c.editorials[id] = name
	}

	for i, p := range c.products {
		if _, dup := c.index[p.ID]; dup {
			return nil, &ValidationError{Kind: p.ProductType, RecordID: p.ID, Field: "id", Value: p.ID, Reason: reasonDuplicateID}
		}
		c.index[p.ID] = i
	}

	return c, nil
}

// Products 전체 상품 목록의 사본을 적재 순서(books, packs, exams)대로 반환합니다.
func (c *Catalog) Products() []Product {
	return slices.Clone(c.products)
}

// Product ID로 상품을 조회합니다. 없으면 ErrProductNotFound를 감싼 에러를 반환합니다.
func (c *Catalog) Product(id string) (Product, error) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, NewErrProductNotFound(id)
	}
	return c.products[i], nil
}

// Len 상품 개수를 반환합니다.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Editorials 출판사 ID -> 이름 조회기를 반환합니다.
func (c *Catalog) Editorials() EditorialLookup {
	return c.editorials
}

// LoadedAt 카탈로그가 생성된 시각을 반환합니다.
func (c *Catalog) LoadedAt() time.Time {
	return c.loadedAt
}

// SkippedRecord 적재 중 제외된 레코드 정보입니다.
type SkippedRecord struct {
	File  string
	Index int
	Err   error
}

// LoadReport 데이터셋 적재 결과 요약입니다.
type LoadReport struct {
	Books      int
	Packs      int
	Exams      int
	Editorials int
	Skipped    []SkippedRecord
}

// Loader 데이터 디렉토리(fs.FS)에서 JSON 데이터셋을 읽어 Catalog를 생성합니다.
//
// 데이터셋 파일이 없으면 빈 데이터셋으로 간주합니다.
// exams.json은 배열과 단일 객체 형식을 모두 허용합니다.
type Loader struct {
	fsys        fs.FS
	normalizer  *Normalizer
	skipInvalid bool
}

// LoaderOption Loader 동작을 조정하는 함수형 옵션입니다.
type LoaderOption func(*Loader)

// WithSkipInvalidRecords 유효하지 않은 레코드를 건너뛰고 보고할지(true), 적재 전체를 실패시킬지(false) 지정합니다. (기본값: true)
func WithSkipInvalidRecords(skip bool) LoaderOption {
	return func(l *Loader) {
		l.skipInvalid = skip
	}
}

// WithNormalizer 사용할 Normalizer를 지정합니다.
func WithNormalizer(n *Normalizer) LoaderOption {
	return func(l *Loader) {
		if n != nil {
			l.normalizer = n
		}
	}
}

// NewLoader 새로운 Loader를 생성합니다.
func NewLoader(fsys fs.FS, opts ...LoaderOption) *Loader {
	l := &Loader{
		fsys:        fsys,
		normalizer:  NewNormalizer(),
		skipInvalid: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load 모든 데이터셋을 읽어 Catalog를 생성합니다.
func (l *Loader) Load() (*Catalog, *LoadReport, error) {
	report := &LoadReport{}
	seen := make(map[string]struct{})

	var products []Product
	datasets := []struct {
		file  string
		kind  ProductType
		count *int
	}{
		{BooksFile, ProductTypeBook, &report.Books},
		{PacksFile, ProductTypePack, &report.Packs},
		{ExamsFile, ProductTypeExam, &report.Exams},
	}

	for _, ds := range datasets {
		records, err := l.readRecords(ds.file)
		if err != nil {
			return nil, nil, err
		}

		for i, rec := range records {
			p, err := l.normalizeRecord(ds.kind, rec)
			if err == nil {
				if _, dup := seen[p.ID]; dup {
					err = &ValidationError{Kind: ds.kind, RecordID: p.ID, Field: "id", Value: p.ID, Reason: reasonDuplicateID}
				}
			}

			if err != nil {
				if !l.skipInvalid {
					return nil, nil, fmt.Errorf("%s[%d]: %w", ds.file, i, err)
				}

				applog.WithComponentAndFields(component, applog.Fields{
					"file":  ds.file,
					"index": i,
					"error": err,
				}).Warn("레코드 건너뜀: 유효하지 않은 상품 레코드입니다")

				report.Skipped = append(report.Skipped, SkippedRecord{File: ds.file, Index: i, Err: err})
				continue
			}

			seen[p.ID] = struct{}{}
			products = append(products, p)
			*ds.count++
		}
	}

	editorials, err := l.readEditorials()
	if err != nil {
		return nil, nil, err
	}
	report.Editorials = len(editorials)

	c, err := NewCatalog(products, editorials)
	if err != nil {
		return nil, nil, err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"books":      report.Books,
		"packs":      report.Packs,
		"exams":      report.Exams,
		"editorials": report.Editorials,
		"skipped":    len(report.Skipped),
	}).Info("카탈로그 적재 완료")

	return c, report, nil
}

func (l *Loader) normalizeRecord(kind ProductType, rec gjson.Result) (Product, error) {
	m, ok := rec.Value().(map[string]any)
	if !ok {
		return Product{}, &ValidationError{Kind: kind, Reason: reasonMalformed + ": JSON 객체가 아닙니다"}
	}
	return l.normalizer.Normalize(kind, m)
}

// readRecords 데이터셋 파일을 레코드 목록으로 읽습니다. 단일 객체는 요소 하나인 목록으로 취급합니다.
func (l *Loader) readRecords(name string) ([]gjson.Result, error) {
	doc, ok, err := l.readDocument(name)
	if err != nil || !ok {
		return nil, err
	}

	switch {
	case doc.IsArray():
		return doc.Array(), nil
	case doc.IsObject():
		return []gjson.Result{doc}, nil
	default:
		return nil, NewErrDatasetMalformed(name)
	}
}

// readEditorials [{"id": "...", "name": "..."}] 배열 또는 {"id": "name"} 객체 형식을 모두 허용합니다.
func (l *Loader) readEditorials() (EditorialMap, error) {
	doc, ok, err := l.readDocument(EditorialsFile)
	if err != nil || !ok {
		return EditorialMap{}, err
	}

	editorials := EditorialMap{}
	switch {
	case doc.IsArray():
		for _, e := range doc.Array() {
			id, name := e.Get("id").String(), e.Get("name").String()
			if id == "" {
				continue
			}
			editorials[id] = strings.TrimSpace(name)
		}
	case doc.IsObject():
		doc.ForEach(func(key, value gjson.Result) bool {
			editorials[key.String()] = strings.TrimSpace(value.String())
			return true
		})
	default:
		return nil, NewErrDatasetMalformed(EditorialsFile)
	}

	return editorials, nil
}

// readDocument 파일을 읽어 JSON 문서로 파싱합니다.
// UTF-8/UTF-16 BOM이 있으면 제거합니다. 파일이 없으면 ok=false를 반환합니다.
func (l *Loader) readDocument(name string) (gjson.Result, bool, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			applog.WithComponentAndFields(component, applog.Fields{
				"file": name,
			}).Warn("데이터셋 없음: 빈 데이터셋으로 간주합니다")
			return gjson.Result{}, false, nil
		}
		return gjson.Result{}, false, NewErrDatasetReadFailed(err, name)
	}
	defer f.Close()

	data, err := io.ReadAll(transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return gjson.Result{}, false, NewErrDatasetReadFailed(err, name)
	}

	if !gjson.ValidBytes(data) {
		return gjson.Result{}, false, NewErrDatasetMalformed(name)
	}

	return gjson.ParseBytes(data), true, nil
}
