package catalog

// descriptor is the static configuration of one entity search adapter:
// which columns participate in matching, how soft deletion is flagged, and
// which columns fill the result card slots. An empty slot column selects
// NULL. This replaces the runtime attribute probing the portal used to do;
// every mapping is declared up front.
type descriptor struct {
	model      string
	category   string
	table      string
	pk         string
	matchCols  []string
	deleteFlag string // "" = entity has no soft-delete column
	urlPrefix  string

	// Card slot columns.
	titleEn string
	titleAr string
	descEn  string
	descAr  string
	image   string
}

// entities lists every searchable entity type in the portal's fixed search
// order. The order is part of the API contract: results are concatenated
// adapter by adapter with no cross-entity ranking, so reordering this
// slice reorders every search response.
var entities = []descriptor{
	{
		model:      "FAQ",
		category:   "FAQ",
		table:      "FAQ",
		pk:         "FAQID",
		matchCols:  []string{"QuestionEn", "AnswerEn", "QuestionAr", "AnswerAr"},
		deleteFlag: "IsDelete",
		urlPrefix:  "/faq/",
		titleEn:    "QuestionEn",
		titleAr:    "QuestionAr",
		descEn:     "AnswerEn",
		descAr:     "AnswerAr",
	},
	{
		model:      "DatasetInfo",
		category:   "Metadata",
		table:      "DatasetInfo",
		pk:         "DatasetID",
		matchCols:  []string{"Name", "Title", "NameAr", "TitleAr", "Description", "DescriptionAr", "Keywords"},
		deleteFlag: "IsDeleted",
		urlPrefix:  "/datasets/",
		titleEn:    "Name",
		titleAr:    "NameAr",
		descEn:     "Description",
		descAr:     "DescriptionAr",
		image:      "Img",
	},
	{
		model:      "MetadataInfo",
		category:   "Metadata",
		table:      "MetadataInfo",
		pk:         "MetadataID",
		matchCols:  []string{"Name", "Title", "NameAr", "TitleAr", "Description", "DescriptionAr"},
		deleteFlag: "IsDeleted",
		urlPrefix:  "/metadata/",
		titleEn:    "Name",
		titleAr:    "NameAr",
		descEn:     "Description",
		descAr:     "DescriptionAr",
	},
	{
		model:      "News",
		category:   "News",
		table:      "News",
		pk:         "NewsID",
		matchCols:  []string{"TitleEn", "DescriptionEn", "TitleAr", "DescriptionAr"},
		deleteFlag: "Is_delete",
		urlPrefix:  "/news/",
		titleEn:    "TitleEn",
		titleAr:    "TitleAr",
		descEn:     "DescriptionEn",
		descAr:     "DescriptionAr",
		image:      "ImagePath",
	},
	{
		model:      "Product",
		category:   "Product",
		table:      "ProductsDB",
		pk:         "ProductID",
		matchCols:  []string{"NameEn", "DescriptionEn", "NameAr", "DescriptionAr"},
		deleteFlag: "IsDeleted",
		urlPrefix:  "/products/",
		titleEn:    "NameEn",
		titleAr:    "NameAr",
		descEn:     "DescriptionEn",
		descAr:     "DescriptionAr",
		image:      "ImagePath",
	},
	{
		model:      "Projects",
		category:   "Projects",
		table:      "Projects",
		pk:         "ProjectID",
		matchCols:  []string{"NameEn", "DescriptionEn", "NameAr", "DescriptionAr"},
		deleteFlag: "IsDeleted",
		urlPrefix:  "/projects/",
		titleEn:    "NameEn",
		titleAr:    "NameAr",
		descEn:     "DescriptionEn",
		descAr:     "DescriptionAr",
		image:      "ImagePath",
	},
	{
		model:      "ProjectDetails",
		category:   "ProjectDetails",
		table:      "ProjectDetails",
		pk:         "ProjectDetailID",
		matchCols:  []string{"ServiceName", "ServiceDescription"},
		deleteFlag: "IsDeleted",
		urlPrefix:  "/project-details/",
		titleEn:    "ServiceName",
		descEn:     "ServiceDescription",
		descAr:     "ServiceDescriptionAr",
		image:      "ImageUrl",
	},
	{
		model:      "ManualGuide",
		category:   "ManualGuide",
		table:      "ManualGuide",
		pk:         "ManualGuideID",
		matchCols:  []string{"NameEn", "DescriptionEn", "NameAr", "DescriptionAr"},
		deleteFlag: "IsDelete",
		urlPrefix:  "/manual-guides/",
		titleEn:    "NameEn",
		titleAr:    "NameAr",
		descEn:     "DescriptionEn",
		descAr:     "DescriptionAr",
		image:      "ImageUrl",
	},
	{
		model:      "Video",
		category:   "Video",
		table:      "Videos",
		pk:         "VideoID",
		matchCols:  []string{"TitleEn", "DescriptionEn", "TitleAr", "DescriptionAr"},
		deleteFlag: "IsDeleted",
		urlPrefix:  "/videos/",
		titleEn:    "TitleEn",
		titleAr:    "TitleAr",
		descEn:     "DescriptionEn",
		descAr:     "DescriptionAr",
		image:      "ImagePath",
	},
}
