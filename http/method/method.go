package method

type Method uint8

const (
	Unknown Method = iota
	GET
	POST
	PUT
	DELETE

	// Count is the number of supported methods, Unknown excluded.
	Count = iota - 1
)

// List contains all the supported methods, sorted by their integer value.
var List = []Method{GET, POST, PUT, DELETE}

func (m Method) String() string {
	switch m {
	case GET:
		return "GET"
	case POST:
		return "POST"
	case PUT:
		return "PUT"
	case DELETE:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

// Parse maps a request-line token onto a method. Any token outside of the
// closed set results in Unknown.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		} else if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		}
	case 6:
		if str == "DELETE" {
			return DELETE
		}
	}

	return Unknown
}
