package docstore

import "strings"

// docPath возвращает полный путь документа collection/id
func docPath(collection, id string) string {
	return collection + "/" + id
}

func validPath(collection, id string) bool {
	return collection != "" && id != "" && !strings.Contains(id, "/")
}

// subtreePrefix префикс путей всех подколлекций документа
func subtreePrefix(collection, id string) string {
	return docPath(collection, id) + "/"
}
