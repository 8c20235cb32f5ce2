package geoportal

// clientConfig holds the embedded client configuration.
type clientConfig struct {
	databasePath  string
	staticBaseURL string
	contactURL    string
	contactPhone  string
	chatbotLimit  int
}

// Option configures the embedded client.
type Option func(*clientConfig)

// WithDatabase sets the content database file path.
func WithDatabase(path string) Option {
	return func(c *clientConfig) { c.databasePath = path }
}

// WithStaticBaseURL sets the base URL used to resolve stored image paths.
func WithStaticBaseURL(baseURL string) Option {
	return func(c *clientConfig) { c.staticBaseURL = baseURL }
}

// WithChatbotContact sets the support channel shown in chatbot fallback
// messages.
func WithChatbotContact(url, phone string) Option {
	return func(c *clientConfig) {
		c.contactURL = url
		c.contactPhone = phone
	}
}

// WithChatbotLimit sets the number of result cards per chatbot answer.
func WithChatbotLimit(limit int) Option {
	return func(c *clientConfig) { c.chatbotLimit = limit }
}
