package app

const msgHelp = `quizhub — терминальный клиент квиз-платформы.

Команды:

  login <username> <password>          вход в аккаунт
  register <username> <email> <password> <first> <last> <role>
                                       регистрация (role: student или teacher)
  logout                               выход из аккаунта

  dashboard                            результаты ваших квизов
  domains [query]                      области знаний
  subjects <domainID> [query]          предметы области
  rooms <subjectID>                    комнаты предмета
  public-rooms                         открытые комнаты без кода
  join <code>                          вход в комнату по коду
  create-room <subjectID> <name> [flags]
                                       создание комнаты (--level, --public, --closed)

  profile                              ваш профиль
  update-profile [--username] [--email]
                                       изменение профиля
  upload-picture <path>                загрузка аватара`

const msgLoginRequired = `You need to sign in first. Run: quizhub login <username> <password>`

const msgJoinRejected = `Invalid room code or room is full. Please try again.`

const msgRoomJoined = `You have joined the room!`

const msgRoomCreated = `Room created.`
