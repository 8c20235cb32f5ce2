package sqlite

// schema mirrors the portal content tables the search adapters read.
// Column names (including the inconsistent soft-delete flags IsDelete /
// IsDeleted / Is_delete) follow the production database; the adapters
// depend on them verbatim.
const schema = `
CREATE TABLE IF NOT EXISTS FAQ (
	FAQID       INTEGER PRIMARY KEY,
	QuestionEn  TEXT NOT NULL,
	QuestionAr  TEXT NOT NULL,
	AnswerEn    TEXT,
	AnswerAr    TEXT,
	CategoryID  INTEGER,
	CreatedAt   TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UpdatedAt   TIMESTAMP,
	IsDelete    INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS DatasetInfo (
	DatasetID     INTEGER PRIMARY KEY,
	Name          TEXT NOT NULL,
	NameAr        TEXT NOT NULL,
	Title         TEXT,
	TitleAr       TEXT,
	Description   TEXT,
	DescriptionAr TEXT,
	CRSName       TEXT,
	EPSG          INTEGER DEFAULT 3857,
	Keywords      TEXT,
	KeywordsAr    TEXT,
	Img           TEXT,
	IsDeleted     INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS MetadataInfo (
	MetadataID    INTEGER PRIMARY KEY,
	DatasetID     INTEGER REFERENCES DatasetInfo(DatasetID),
	Name          TEXT NOT NULL,
	NameAr        TEXT NOT NULL,
	Title         TEXT,
	TitleAr       TEXT,
	Description   TEXT,
	DescriptionAr TEXT,
	CreationDate  DATE,
	URL           TEXT,
	WestBound     REAL,
	EastBound     REAL,
	NorthBound    REAL,
	SouthBound    REAL,
	Organization  TEXT,
	FilePath      TEXT,
	IsDeleted     INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS News (
	NewsID        INTEGER PRIMARY KEY,
	TitleEn       TEXT,
	TitleAr       TEXT NOT NULL,
	DescriptionEn TEXT,
	DescriptionAr TEXT,
	ImagePath     TEXT,
	VideoPath     TEXT,
	CreatedAt     TIMESTAMP,
	UpdatedAt     TIMESTAMP,
	Is_slide      INTEGER DEFAULT 0,
	Is_delete     INTEGER DEFAULT 0,
	Read_count    INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS ProductsDB (
	ProductID           INTEGER PRIMARY KEY,
	NameEn              TEXT NOT NULL,
	NameAr              TEXT,
	DescriptionEn       TEXT,
	DescriptionAr       TEXT,
	ServicesName        TEXT,
	ServicesDescription TEXT,
	ServicesLink        TEXT,
	ImagePath           TEXT,
	VideoPath           TEXT,
	CreatedAt           TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UpdatedAt           TIMESTAMP,
	IsDeleted           INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS Projects (
	ProjectID     INTEGER PRIMARY KEY,
	NameEn        TEXT NOT NULL,
	NameAr        TEXT,
	DescriptionEn TEXT,
	DescriptionAr TEXT,
	ServicesName  TEXT,
	ServicesLink  TEXT,
	ImagePath     TEXT,
	VideoPath     TEXT,
	CreatedAt     TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UpdatedAt     TIMESTAMP,
	IsDeleted     INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS ProjectDetails (
	ProjectDetailID      INTEGER PRIMARY KEY,
	ProjectID            INTEGER NOT NULL REFERENCES Projects(ProjectID),
	Year                 INTEGER NOT NULL,
	Quarter              INTEGER NOT NULL,
	ServiceName          TEXT,
	ServiceLink          TEXT,
	ServiceDescription   TEXT,
	ServiceDescriptionAr TEXT,
	Details              TEXT,
	DetailsAr            TEXT,
	ImageUrl             TEXT,
	PdfName              TEXT,
	PdfPath              TEXT,
	CreatedAt            TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	IsDeleted            INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS ManualGuide (
	ManualGuideID INTEGER PRIMARY KEY,
	NameEn        TEXT NOT NULL,
	NameAr        TEXT,
	DescriptionEn TEXT,
	DescriptionAr TEXT,
	Path          TEXT,
	ImageUrl      TEXT,
	CreatedAt     TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UpdatedAt     TIMESTAMP,
	IsDelete      INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS Videos (
	VideoID       INTEGER PRIMARY KEY,
	TitleEn       TEXT NOT NULL,
	TitleAr       TEXT,
	DescriptionEn TEXT,
	DescriptionAr TEXT,
	ImagePath     TEXT,
	Link          TEXT,
	CreatedAt     TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UpdatedAt     TIMESTAMP,
	IsDeleted     INTEGER DEFAULT 0
);
`
